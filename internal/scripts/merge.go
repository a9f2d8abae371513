package scripts

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/syntax"

	"github.com/organiclever/the-organic/internal/manifest"
)

// ErrInvalidManifestPath is returned when a manifest path has no parent
// directory to cd into.
var ErrInvalidManifestPath = errors.New("manifest path has no parent directory")

// Merge reads the manifest at relManifest (relative to root) and adds each of
// its scripts to t as "{namespace}:{name}" -> "cd {dir} && {command}".
//
// A missing manifest is logged and skipped. Commands that do not parse as
// shell are added anyway with a warning. A nil logger uses log.Default.
func Merge(t *Table, root, relManifest, namespace string, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	rel := filepath.ToSlash(relManifest)
	dir := path.Dir(rel)
	if dir == "." || dir == "/" || strings.HasPrefix(dir, "../") || dir == ".." {
		return fmt.Errorf("%w: %s", ErrInvalidManifestPath, relManifest)
	}

	pkg, err := manifest.Load(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("manifest not found, skipping scripts", "path", rel)
			return nil
		}
		return err
	}

	cd, err := syntax.Quote(dir, syntax.LangBash)
	if err != nil {
		return fmt.Errorf("quoting %s: %w", dir, err)
	}
	for _, s := range pkg.Scripts {
		if err := checkShell(s.Command); err != nil {
			logger.Warn("script is not valid shell", "script", namespace+":"+s.Name, "path", rel, "err", err)
		}
		if err := t.Add(namespace+":"+s.Name, "cd "+cd+" && "+s.Command); err != nil {
			return fmt.Errorf("%s: %w", rel, err)
		}
	}
	logger.Debug("merged scripts", "path", rel, "namespace", namespace, "count", len(pkg.Scripts))
	return nil
}

func checkShell(command string) error {
	_, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	return err
}
