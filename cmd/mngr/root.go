package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/organiclever/the-organic/internal/config"
	"github.com/organiclever/the-organic/internal/lifecycle"
	"github.com/organiclever/the-organic/internal/workspace"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mngr",
		Short: "Monorepo workspace manager for apps/ and libs/ sub-projects",
		Long: dedent.Dedent(`
			mngr manages a workspace rooted at the directory holding package-tmpl.json.

			It generates the root package.json from the template with every
			sub-project script namespaced as "{project}:{script}", installs
			dependencies (root, then libs, then apps in parallel) and can wipe
			and rebuild all node_modules directories.`),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runLegacy,
	}

	pf := cmd.PersistentFlags()
	pf.String("root", ".", "Directory to start the workspace root search from")
	pf.String("config", "", "Config file (default: <root>/"+config.FileName+")")
	pf.BoolP("verbose", "v", false, "Enable debug logging")

	f := cmd.Flags()
	f.Bool("init", false, "Same as `mngr init`")
	f.Bool("doctor", false, "Same as `mngr doctor`")
	f.Bool("reset", false, "Same as `mngr reset --yes`")
	f.StringSlice("deps", nil, "Same as `mngr add <pkg>...`")
	f.StringSlice("deps-dev", nil, "Same as `mngr add --dev <pkg>...`")
	cmd.MarkFlagsMutuallyExclusive("init", "doctor", "reset", "deps", "deps-dev")
	for _, name := range []string{"init", "doctor", "reset", "deps", "deps-dev"} {
		_ = f.MarkHidden(name)
	}

	cmd.AddCommand(
		newInitCmd(),
		newResetCmd(),
		newCleanCmd(),
		newScriptsCmd(),
		newAddCmd(),
		newDoctorCmd(),
		newConfigCmd(),
	)

	return cmd
}

// runLegacy maps the single-flag invocations of earlier releases onto the
// subcommands.
func runLegacy(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	switch {
	case f.Changed("init"):
		return runInit(cmd, nil)
	case f.Changed("doctor"):
		return runDoctor(cmd, nil)
	case f.Changed("reset"):
		return resetWorkspace(cmd, false)
	case f.Changed("deps"):
		pkgs, _ := f.GetStringSlice("deps")
		return addPackages(cmd, pkgs, false, false)
	case f.Changed("deps-dev"):
		pkgs, _ := f.GetStringSlice("deps-dev")
		return addPackages(cmd, pkgs, true, false)
	}
	return cmd.Help()
}

func newLogger(cmd *cobra.Command) *log.Logger {
	level := log.InfoLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "mngr",
		Level:  level,
	})
}

func openWorkspace(cmd *cobra.Command) (*workspace.Context, error) {
	root, _ := cmd.Flags().GetString("root")
	cfgFile, _ := cmd.Flags().GetString("config")
	return workspace.Open(root, cfgFile)
}

// loadConfig returns the workspace config when a root is found and the
// defaults (plus --config and environment) otherwise.
func loadConfig(cmd *cobra.Command) (*config.Config, *workspace.Context, error) {
	ws, err := openWorkspace(cmd)
	if err == nil {
		return ws.Config, ws, nil
	}
	if !errors.Is(err, workspace.ErrRootNotFound) {
		return nil, nil, err
	}
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.LoadOptions{File: cfgFile})
	return cfg, nil, err
}

func newManager(cmd *cobra.Command) (*lifecycle.Manager, error) {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return nil, err
	}
	return lifecycle.New(ws, lifecycle.Options{
		Logger:   newLogger(cmd),
		Progress: cmd.ErrOrStderr(),
	}), nil
}

// stdinIsTerminal gates interactive prompts. Tests replace it.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
