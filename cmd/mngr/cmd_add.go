package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [package[@range]...]",
		Short: "Add dependencies to the template and root package.json",
		Long: `Add dependencies to package-tmpl.json and package.json, then install
them at the workspace root. Packages without a range are pinned to
^<latest>. Without arguments you are prompted for package names.`,
		RunE: runAdd,
	}
	cmd.Flags().BoolP("dev", "D", false, "Add to devDependencies")
	cmd.Flags().Bool("no-install", false, "Only update the manifests")
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	dev, _ := cmd.Flags().GetBool("dev")
	noInstall, _ := cmd.Flags().GetBool("no-install")

	pkgs := args
	if len(pkgs) == 0 {
		if !stdinIsTerminal() {
			return fmt.Errorf("no packages given; pass package names as arguments")
		}
		answer, err := promptInput("Packages to add", "react @types/node@^22", validatePackages)
		if err != nil {
			return err
		}
		pkgs = splitPackages(answer)
	}
	return addPackages(cmd, pkgs, dev, noInstall)
}

func addPackages(cmd *cobra.Command, pkgs []string, dev, noInstall bool) error {
	m, err := newManager(cmd)
	if err != nil {
		return err
	}
	added, err := m.AddDependencies(pkgs, dev)
	if err != nil {
		return err
	}

	names := make([]string, len(added))
	for i, d := range added {
		names[i] = d.Name + "@" + d.Version
	}
	field := "dependencies"
	if dev {
		field = "devDependencies"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added to %s: %s\n", field, strings.Join(names, ", "))

	if noInstall {
		return nil
	}
	return m.InstallRoot(cmd.Context())
}
