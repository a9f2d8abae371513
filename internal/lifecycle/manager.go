package lifecycle

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/organiclever/the-organic/internal/pkgmgr"
	"github.com/organiclever/the-organic/internal/ui"
	"github.com/organiclever/the-organic/internal/workspace"
)

// Options configures a Manager.
type Options struct {
	// Logger receives structured logs. Nil uses log.Default.
	Logger *log.Logger
	// Progress receives "[n/total]" lines for bulk steps. Nil disables them.
	Progress io.Writer
	// Runner overrides the package manager runner built from the config.
	Runner *pkgmgr.Runner
}

// Manager runs lifecycle operations against one workspace.
type Manager struct {
	ws       *workspace.Context
	log      *log.Logger
	pm       *pkgmgr.Runner
	progress io.Writer
}

// New returns a Manager for ws.
func New(ws *workspace.Context, opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	pm := opts.Runner
	if pm == nil {
		pm = pkgmgr.New(ws.Config.PackageManager, logger)
	}
	return &Manager{ws: ws, log: logger, pm: pm, progress: opts.Progress}
}

// Workspace returns the workspace the Manager operates on.
func (m *Manager) Workspace() *workspace.Context { return m.ws }

func (m *Manager) newProgress(total int) *ui.Progress {
	if m.progress == nil {
		return nil
	}
	return ui.NewProgress(m.progress, total)
}

// InitOptions controls Init and Reset.
type InitOptions struct {
	// SkipInstall stops after the root manifest is written.
	SkipInstall bool
}
