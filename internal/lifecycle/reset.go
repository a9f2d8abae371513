package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/organiclever/the-organic/internal/artifacts"
	"github.com/organiclever/the-organic/internal/batch"
)

// Clean removes artifact directories from the root, apps and libs trees in
// parallel. The root walk skips the two collections so the trees are
// disjoint.
func (m *Manager) Clean(ctx context.Context) error {
	cfg := m.ws.Config
	targets := []string{m.ws.Root, m.ws.AppsDir(), m.ws.LibsDir()}
	opts := func(dir string) artifacts.Options {
		o := artifacts.Options{Name: cfg.ArtifactDir, SkipNames: cfg.SkipDirs}
		if dir == m.ws.Root {
			o.SkipPaths = []string{m.ws.AppsDir(), m.ws.LibsDir()}
		}
		return o
	}

	res := batch.Run(ctx, targets, func(_ context.Context, dir string) error {
		n, err := artifacts.Remove(dir, opts(dir))
		if err == nil {
			m.log.Debug("removed artifacts", "dir", dir, "count", n)
		}
		return err
	}, batch.Options[string]{
		Workers:  len(targets),
		Name:     func(dir string) string { return dir },
		Progress: m.newProgress(len(targets)),
	})
	if err := res.Err(); err != nil {
		return fmt.Errorf("removing %s: %w", cfg.ArtifactDir, err)
	}
	m.log.Info("removed artifact directories", "name", cfg.ArtifactDir)
	return nil
}

// Reset deletes the root manifest and all artifact directories, then runs
// Init. Each step must succeed before the next starts; running Reset again
// after a partial failure is safe.
func (m *Manager) Reset(ctx context.Context, opts InitOptions) error {
	path := m.ws.ManifestPath()
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	m.log.Info("removed root manifest", "path", m.ws.Config.Manifest)

	if err := m.Clean(ctx); err != nil {
		return err
	}
	return m.Init(ctx, opts)
}
