package lifecycle

import (
	"context"
	"fmt"

	"github.com/organiclever/the-organic/internal/batch"
	"github.com/organiclever/the-organic/internal/pkgmgr"
	"github.com/organiclever/the-organic/internal/workspace"
)

// Init synthesizes the root manifest and, unless opts.SkipInstall, installs
// dependencies. The concurrent runner is added to the template first when
// configured, so the synthesized manifest already lists it.
func (m *Manager) Init(ctx context.Context, opts InitOptions) error {
	if m.ws.Config.Aggregate.EnsureRunner {
		if _, err := m.EnsureRunner(); err != nil {
			return err
		}
	}
	if _, err := m.Synthesize(); err != nil {
		return err
	}
	if opts.SkipInstall {
		return nil
	}
	return m.InstallAll(ctx)
}

// InstallAll installs the root, then every lib one at a time, then apps in
// parallel. A failed lib stops before any app is installed.
func (m *Manager) InstallAll(ctx context.Context) error {
	if err := m.InstallRoot(ctx); err != nil {
		return err
	}

	libs, err := m.ws.Libs()
	if err != nil {
		return err
	}
	if err := m.install(ctx, m.ws.Config.LibsDir, libs, 1); err != nil {
		return err
	}

	apps, err := m.ws.Apps()
	if err != nil {
		return err
	}
	return m.install(ctx, m.ws.Config.AppsDir, apps, m.ws.Config.Jobs)
}

// InstallRoot runs the package manager install in the workspace root.
func (m *Manager) InstallRoot(ctx context.Context) error {
	m.log.Info("installing root dependencies")
	if err := m.pm.Install(ctx, m.ws.Root); err != nil {
		return fmt.Errorf("installing root dependencies: %w", err)
	}
	return nil
}

func (m *Manager) install(ctx context.Context, collection string, projects []workspace.SubProject, workers int) error {
	if len(projects) == 0 {
		m.log.Debug("nothing to install", "collection", collection)
		return nil
	}
	m.log.Info("installing", "collection", collection, "projects", len(projects))
	m.log.Debug("install order", "projects", projectNames(projects))

	eligible := m.installable()
	res := batch.Run(ctx, projects, func(ctx context.Context, sp workspace.SubProject) error {
		return m.pm.Install(ctx, sp.Dir)
	}, batch.Options[workspace.SubProject]{
		Workers:  workers,
		Name:     func(sp workspace.SubProject) string { return sp.RelPath },
		Eligible: func(sp workspace.SubProject) bool { return eligible(sp.Dir) },
		Progress: m.newProgress(len(projects)),
	})
	for _, f := range res.Failures {
		m.log.Error("install failed", "project", f.Name, "err", f.Err)
	}
	if err := res.Err(); err != nil {
		return fmt.Errorf("installing %s: %d of %d failed: %w", collection, len(res.Failures), res.Total, err)
	}
	m.log.Info("installed", "collection", collection, "succeeded", res.Succeeded, "skipped", res.Skipped)
	return nil
}

func (m *Manager) installable() pkgmgr.Predicate {
	cfg := m.ws.Config
	if cfg.Install.RequireKind {
		return pkgmgr.KindIs(cfg.Manifest, cfg.Install.Kind)
	}
	return pkgmgr.ManifestPresent(cfg.Manifest)
}
