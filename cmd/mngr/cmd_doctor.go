package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/organiclever/the-organic/internal/config"
	"github.com/organiclever/the-organic/internal/pkgmgr"
	"github.com/organiclever/the-organic/internal/ui"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the toolchain (volta, npm, node) is installed",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}
}

// toolCheck is the result of checking one tool.
type toolCheck struct {
	Tool    string
	Version string
	Status  string
	OK      bool
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	cfg, ws, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)
	out := cmd.OutOrStdout()

	checks := checkTools(cfg, func(tool string) (string, error) { return pkgmgr.Version(tool, logger) })
	tbl := ui.NewTable(out, "TOOL", "VERSION", "STATUS")
	ok := true
	for _, c := range checks {
		tbl.Row(filepath.Base(c.Tool), c.Version, c.Status)
		ok = ok && c.OK
	}
	if err := tbl.Flush(); err != nil {
		return err
	}

	if ws != nil {
		apps, appsErr := ws.Apps()
		libs, libsErr := ws.Libs()
		_, _ = fmt.Fprintf(out, "\nWorkspace: %s (%d apps, %d libs)\n", ws.Root, len(apps), len(libs))
		for _, err := range []error{appsErr, libsErr} {
			if err != nil {
				logger.Warn("sub-project discovery failed", "err", err)
				_, _ = fmt.Fprintln(out, errStyle.Render("  "+err.Error()))
				ok = false
			}
		}
	} else {
		_, _ = fmt.Fprintln(out, "\nNo workspace found (skipping workspace checks)")
	}

	if ok {
		_, _ = fmt.Fprintln(out, okStyle.Render("All checks passed."))
		return nil
	}
	_, _ = fmt.Fprintln(out, errStyle.Render("Some checks failed. See above for details."))
	return fmt.Errorf("doctor checks failed")
}

// checkTools resolves each configured tool, reads its version and compares
// it with the configured minimum, keyed by the tool's base name.
func checkTools(cfg *config.Config, version func(string) (string, error)) []toolCheck {
	checks := make([]toolCheck, 0, len(cfg.Doctor.Tools))
	for _, tool := range cfg.Doctor.Tools {
		c := toolCheck{Tool: tool, Version: "-"}
		switch {
		case !pkgmgr.Installed(tool):
			c.Status = "NOT FOUND"
		default:
			v, err := version(tool)
			if err != nil {
				c.Status = "ERROR"
				break
			}
			c.Version = v
			c.Status, c.OK = compareMin(v, cfg.Doctor.MinVersions[filepath.Base(tool)])
		}
		checks = append(checks, c)
	}
	return checks
}

func compareMin(version, minimum string) (string, bool) {
	if minimum == "" {
		return "ok", true
	}
	v, lo := "v"+version, "v"+minimum
	if !semver.IsValid(v) {
		return fmt.Sprintf("cannot compare with >= %s", minimum), false
	}
	if semver.Compare(v, lo) < 0 {
		return fmt.Sprintf("needs >= %s", minimum), false
	}
	return "ok", true
}
