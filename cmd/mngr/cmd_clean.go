package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Delete every node_modules directory in the workspace",
		Args:  cobra.NoArgs,
		RunE:  runClean,
	}
}

func runClean(cmd *cobra.Command, _ []string) error {
	m, err := newManager(cmd)
	if err != nil {
		return err
	}
	if err := m.Clean(cmd.Context()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s directories under %s\n", m.Workspace().Config.ArtifactDir, m.Workspace().Root)
	return nil
}
