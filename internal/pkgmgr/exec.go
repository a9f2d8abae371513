package pkgmgr

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// CommandError is returned when an external command cannot start or exits
// non-zero.
type CommandError struct {
	Name   string
	Args   []string
	Dir    string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", e.Name, strings.Join(e.Args, " "))
	if e.Dir != "" {
		fmt.Fprintf(&b, " (in %s)", e.Dir)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		fmt.Fprintf(&b, ": %s", s)
	}
	return b.String()
}

func (e *CommandError) Unwrap() error { return e.Err }

// output runs name with args in dir and returns its trimmed stdout.
func output(logger *log.Logger, dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("exec", "cmd", name, "args", strings.Join(args, " "), "dir", dir)
	if err := cmd.Run(); err != nil {
		return "", &CommandError{Name: name, Args: args, Dir: dir, Stderr: stderr.String(), Err: err}
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Installed reports whether tool resolves on PATH.
func Installed(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}
