package lifecycle

import (
	"fmt"
	"slices"

	"github.com/organiclever/the-organic/internal/manifest"
	"github.com/organiclever/the-organic/internal/scripts"
	"github.com/organiclever/the-organic/internal/workspace"
)

// Synthesis is the outcome of Synthesize.
type Synthesis struct {
	Scripts  *scripts.Table
	Manifest []byte
	Path     string
}

// Scripts builds the namespaced script table for the workspace without
// writing anything: libs then apps, followed by the aggregate scripts.
func (m *Manager) Scripts() (*scripts.Table, error) {
	libs, err := m.ws.Libs()
	if err != nil {
		return nil, err
	}
	apps, err := m.ws.Apps()
	if err != nil {
		return nil, err
	}

	t := &scripts.Table{}
	for _, sp := range slices.Concat(libs, apps) {
		if err := scripts.Merge(t, m.ws.Root, sp.RelManifest(), m.ws.Namespace(sp), m.log); err != nil {
			return nil, err
		}
	}

	members := make([]scripts.Member, len(apps))
	for i, app := range apps {
		members[i] = scripts.Member{Name: app.Name, Namespace: m.ws.Namespace(app)}
	}
	for _, agg := range m.aggregates() {
		if err := t.Add(agg.Name, agg.Build(members, t)); err != nil {
			return nil, fmt.Errorf("aggregate script: %w", err)
		}
	}
	return t, nil
}

func (m *Manager) aggregates() []scripts.Aggregate {
	cfg := m.ws.Config
	dev := scripts.Aggregate{
		Name:           "dev",
		Suffix:         "dev",
		Runner:         cfg.Aggregate.Runner,
		PackageManager: cfg.PackageManager,
		Lead:           cfg.Aggregate.DevLead,
		Exclude:        cfg.Aggregate.Exclude,
	}
	aggs := []scripts.Aggregate{dev}
	if cfg.Aggregate.TestWatch {
		watch := dev
		watch.Name, watch.Suffix, watch.Lead = "test:watch", "test:watch", ""
		aggs = append(aggs, watch)
	}
	return aggs
}

// Synthesize writes the root manifest: the template with its scripts field
// replaced by the workspace script table. The file is replaced atomically.
func (m *Manager) Synthesize() (*Synthesis, error) {
	tmpl, err := manifest.LoadTemplate(m.ws.TemplatePath())
	if err != nil {
		return nil, err
	}
	t, err := m.Scripts()
	if err != nil {
		return nil, err
	}
	raw, err := t.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding scripts: %w", err)
	}
	doc, err := manifest.Render(tmpl, raw)
	if err != nil {
		return nil, err
	}
	path := m.ws.ManifestPath()
	if err := manifest.WriteFile(path, doc); err != nil {
		return nil, err
	}
	m.log.Info("wrote root manifest", "path", m.ws.Config.Manifest, "scripts", t.Len())
	return &Synthesis{Scripts: t, Manifest: doc, Path: path}, nil
}

func projectNames(sps []workspace.SubProject) []string {
	names := make([]string, len(sps))
	for i, sp := range sps {
		names[i] = sp.RelPath
	}
	return names
}
