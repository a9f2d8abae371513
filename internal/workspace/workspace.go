package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/organiclever/the-organic/internal/config"
)

// ErrRootNotFound is returned when no ancestor of the start directory holds
// the template manifest.
var ErrRootNotFound = errors.New("workspace root not found")

// Context holds the resolved root and configuration for a workspace.
type Context struct {
	Root   string
	Config *config.Config
}

// New returns a Context for an already-resolved root.
func New(root string, cfg *config.Config) *Context {
	return &Context{Root: root, Config: cfg}
}

// Open resolves the workspace root by searching upward from start and loads
// its configuration. An explicit configFile is read before the search so that
// a renamed template can still be used as the sentinel; otherwise the root's
// mngr.yaml (if any) is read once the root is known.
func Open(start, configFile string) (*Context, error) {
	cfg, err := config.Load(config.LoadOptions{File: configFile})
	if err != nil {
		return nil, err
	}

	root, err := FindRoot(start, cfg.Template)
	if err != nil {
		return nil, err
	}

	if configFile == "" {
		cfg, err = config.Load(config.LoadOptions{Root: root})
		if err != nil {
			return nil, err
		}
	}
	return New(root, cfg), nil
}

// FindRoot returns the first directory, starting at start and walking up
// through its ancestors, that contains a file named sentinel.
func FindRoot(start, sentinel string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}
	for dir := abs; ; {
		if isFile(filepath.Join(dir, sentinel)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or any parent directory", ErrRootNotFound, sentinel, abs)
		}
		dir = parent
	}
}

// ManifestPath returns the absolute path of the generated root manifest.
func (c *Context) ManifestPath() string {
	return filepath.Join(c.Root, c.Config.Manifest)
}

// TemplatePath returns the absolute path of the template manifest.
func (c *Context) TemplatePath() string {
	return filepath.Join(c.Root, c.Config.Template)
}

// AppsDir returns the absolute path of the apps collection.
func (c *Context) AppsDir() string {
	return filepath.Join(c.Root, c.Config.AppsDir)
}

// LibsDir returns the absolute path of the libs collection.
func (c *Context) LibsDir() string {
	return filepath.Join(c.Root, c.Config.LibsDir)
}

// Apps discovers the sub-projects of the apps collection.
func (c *Context) Apps() ([]SubProject, error) {
	return Discover(c.Root, c.Config.AppsDir, c.Config.Manifest)
}

// Libs discovers the sub-projects of the libs collection.
func (c *Context) Libs() ([]SubProject, error) {
	return Discover(c.Root, c.Config.LibsDir, c.Config.Manifest)
}

// Namespace returns the script namespace for sp: the collection's fixed
// namespace when configured, otherwise the sub-project name.
func (c *Context) Namespace(sp SubProject) string {
	switch sp.Collection {
	case c.Config.LibsDir:
		if c.Config.LibsNamespace != "" {
			return c.Config.LibsNamespace
		}
	case c.Config.AppsDir:
		if c.Config.AppsNamespace != "" {
			return c.Config.AppsNamespace
		}
	}
	return sp.Name
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
