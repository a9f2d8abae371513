package pkgmgr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/organiclever/the-organic/internal/manifest"
)

// Runner runs package manager commands such as "npm install".
type Runner struct {
	Command string
	Logger  *log.Logger
}

// New returns a Runner for command. A nil logger uses log.Default.
func New(command string, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Command: command, Logger: logger}
}

// Install runs "{command} install" in dir. Once started the install runs to
// completion; ctx is only checked before launching it.
func (r *Runner) Install(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := output(r.Logger, dir, r.Command, "install")
	return err
}

// LatestVersion asks the registry for the latest published version of pkg.
func (r *Runner) LatestVersion(pkg string) (string, error) {
	v, err := output(r.Logger, "", r.Command, "view", pkg, "version")
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", fmt.Errorf("%s view %s: no version returned", r.Command, pkg)
	}
	// Multi-line output lists several versions; the last one is the newest.
	if i := strings.LastIndexByte(v, '\n'); i >= 0 {
		v = strings.TrimSpace(v[i+1:])
	}
	return v, nil
}

// Version runs "{tool} --version" and returns its output without a leading
// "v".
func Version(tool string, logger *log.Logger) (string, error) {
	if logger == nil {
		logger = log.Default()
	}
	v, err := output(logger, "", tool, "--version")
	if err != nil {
		return "", err
	}
	if i := strings.IndexByte(v, '\n'); i >= 0 {
		v = v[:i]
	}
	return strings.TrimPrefix(strings.TrimSpace(v), "v"), nil
}

// Predicate reports whether the project in dir is installable.
type Predicate func(dir string) bool

// ManifestPresent accepts directories containing manifestName.
func ManifestPresent(manifestName string) Predicate {
	return func(dir string) bool {
		info, err := os.Stat(filepath.Join(dir, manifestName))
		return err == nil && !info.IsDir()
	}
}

// KindIs accepts directories whose manifest declares project.kind == kind.
func KindIs(manifestName, kind string) Predicate {
	return func(dir string) bool {
		pkg, err := manifest.Load(filepath.Join(dir, manifestName))
		return err == nil && pkg.Kind == kind
	}
}
