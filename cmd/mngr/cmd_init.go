package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/organiclever/the-organic/internal/lifecycle"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate the root package.json and install all dependencies",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	cmd.Flags().Bool("skip-install", false, "Only write the root package.json")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	skip, _ := cmd.Flags().GetBool("skip-install")

	m, err := newManager(cmd)
	if err != nil {
		return err
	}
	if err := m.Init(cmd.Context(), lifecycle.InitOptions{SkipInstall: skip}); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Workspace initialized: "+m.Workspace().Root))
	return nil
}
