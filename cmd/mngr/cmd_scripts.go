package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/organiclever/the-organic/internal/manifest"
	"github.com/organiclever/the-organic/internal/ui"
)

func newScriptsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scripts",
		Short: "Show the root scripts init would generate",
		Args:  cobra.NoArgs,
		RunE:  runScripts,
	}
	cmd.Flags().Bool("json", false, "Print the scripts object as JSON")
	return cmd
}

func runScripts(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	m, err := newManager(cmd)
	if err != nil {
		return err
	}
	t, err := m.Scripts()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		data, err := t.MarshalJSON()
		if err != nil {
			return fmt.Errorf("encoding scripts: %w", err)
		}
		_, err = out.Write(manifest.Format(data))
		return err
	}

	tbl := ui.NewTable(out, "SCRIPT", "COMMAND")
	for _, e := range t.Entries() {
		tbl.Row(e.Key, e.Command)
	}
	return tbl.Flush()
}
