package lifecycle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/organiclever/the-organic/internal/manifest"
)

// Dependency is a package added to the manifests.
type Dependency struct {
	Name    string
	Version string
}

// ParseDependency splits "name@range" into its parts. Scoped names such as
// "@types/node" keep their leading "@"; the range is empty when absent.
func ParseDependency(arg string) Dependency {
	if i := strings.LastIndexByte(arg, '@'); i > 0 {
		return Dependency{Name: arg[:i], Version: arg[i+1:]}
	}
	return Dependency{Name: arg}
}

// AddDependencies records pkgs in the template and, when it exists, the root
// manifest. Packages without an explicit range get "^{latest}" from the
// registry. Nothing is installed.
func (m *Manager) AddDependencies(pkgs []string, dev bool) ([]Dependency, error) {
	if len(pkgs) == 0 {
		return nil, errors.New("no packages given")
	}
	field := manifest.DependenciesField
	if dev {
		field = manifest.DevDependenciesField
	}

	tmplPath := m.ws.TemplatePath()
	tmpl, err := manifest.LoadTemplate(tmplPath)
	if err != nil {
		return nil, err
	}
	rootPath := m.ws.ManifestPath()
	root, err := os.ReadFile(rootPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		root = nil
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", rootPath, err)
	default:
		if _, err := manifest.Parse(rootPath, root); err != nil {
			return nil, err
		}
	}

	added := make([]Dependency, 0, len(pkgs))
	for _, arg := range pkgs {
		dep := ParseDependency(arg)
		if dep.Name == "" {
			return nil, fmt.Errorf("invalid package %q", arg)
		}
		if dep.Version == "" {
			latest, err := m.pm.LatestVersion(dep.Name)
			if err != nil {
				return nil, fmt.Errorf("resolving %s: %w", dep.Name, err)
			}
			dep.Version = "^" + latest
		}

		if tmpl, err = manifest.SetDependency(tmpl, field, dep.Name, dep.Version); err != nil {
			return nil, err
		}
		if root != nil {
			if root, err = manifest.SetDependency(root, field, dep.Name, dep.Version); err != nil {
				return nil, err
			}
		}
		m.log.Info("added dependency", "name", dep.Name, "version", dep.Version, "field", field)
		added = append(added, dep)
	}

	if err := manifest.WriteFile(tmplPath, tmpl); err != nil {
		return nil, err
	}
	if root != nil {
		if err := manifest.WriteFile(rootPath, root); err != nil {
			return nil, err
		}
	}
	return added, nil
}

// EnsureRunner adds the configured concurrent runner as a dev dependency when
// the template does not list it. It reports whether anything was added.
func (m *Manager) EnsureRunner() (bool, error) {
	runner := m.ws.Config.Aggregate.Runner
	tmpl, err := manifest.LoadTemplate(m.ws.TemplatePath())
	if err != nil {
		return false, err
	}
	if _, ok := manifest.Dependency(tmpl, runner); ok {
		return false, nil
	}
	if _, err := m.AddDependencies([]string{runner}, true); err != nil {
		return false, fmt.Errorf("adding %s: %w", runner, err)
	}
	return true, nil
}
