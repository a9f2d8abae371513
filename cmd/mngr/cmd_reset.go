package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/organiclever/the-organic/internal/lifecycle"
)

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete package.json and every node_modules, then run init",
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func runReset(cmd *cobra.Command, _ []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	return resetWorkspace(cmd, !yes)
}

func resetWorkspace(cmd *cobra.Command, confirm bool) error {
	m, err := newManager(cmd)
	if err != nil {
		return err
	}
	ws := m.Workspace()

	if confirm {
		if !stdinIsTerminal() {
			return fmt.Errorf("reset is destructive; pass --yes to confirm")
		}
		ok, err := promptConfirm(
			"Reset workspace?",
			fmt.Sprintf("This deletes %s and every %s under %s.", ws.Config.Manifest, ws.Config.ArtifactDir, ws.Root),
		)
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled.")
			return nil
		}
	}

	if err := m.Reset(cmd.Context(), lifecycle.InitOptions{}); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Workspace reset: "+ws.Root))
	return nil
}
