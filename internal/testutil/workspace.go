package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// DefaultTemplate is a minimal template manifest.
const DefaultTemplate = `{
  "name": "the-organic",
  "version": "1.0.0",
  "private": true,
  "workspaces": ["apps/*", "libs/*"],
  "scripts": {"stale": "echo stale"},
  "devDependencies": {"concurrently": "^9.0.0"}
}
`

// NewWorkspace creates a temp workspace root containing package-tmpl.json
// with the given content (DefaultTemplate when empty) and returns its path.
func NewWorkspace(t *testing.T, template string) string {
	t.Helper()
	root := t.TempDir()
	if template == "" {
		template = DefaultTemplate
	}
	WriteFile(t, filepath.Join(root, "package-tmpl.json"), template)
	return root
}

// AddProject writes collection/name/package.json under root and returns the
// project directory.
func AddProject(t *testing.T, root, collection, name, manifest string) string {
	t.Helper()
	dir := filepath.Join(root, collection, name)
	WriteFile(t, filepath.Join(dir, "package.json"), manifest)
	return dir
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // test dir
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

// MkdirAll creates path and its parents.
func MkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil { //nolint:gosec // test dir
		t.Fatal(err)
	}
}

// FailMarker is the file name that makes the fake package manager fail
// `install` in the directory containing it.
const FailMarker = ".fail-install"

// FakePM is a shell script standing in for npm. Every invocation is appended
// to Log as "<dir> <args...>".
type FakePM struct {
	Path string
	Log  string
}

// NewFakePM writes a fake package manager. `view <pkg> version` prints
// version, `--version` prints 10.0.0, and `install` fails with a message on
// stderr when FailMarker exists in the working directory.
func NewFakePM(t *testing.T, version string) *FakePM {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake package manager requires a POSIX shell")
	}
	dir := t.TempDir()
	log := filepath.Join(dir, "calls.log")
	script := fmt.Sprintf(`#!/bin/sh
echo "$(pwd) $*" >> %q
case "$1" in
  install)
    if [ -f %q ]; then
      echo "install exploded in $(pwd)" >&2
      exit 1
    fi
    mkdir -p node_modules
    ;;
  view)
    echo %q
    ;;
  --version)
    echo "10.0.0"
    ;;
esac
exit 0
`, log, FailMarker, version)
	path := filepath.Join(dir, "fake-npm")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil { //nolint:gosec // must be executable
		t.Fatal(err)
	}
	return &FakePM{Path: path, Log: log}
}

// Calls returns the recorded invocations in order.
func (f *FakePM) Calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(f.Log)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// InstallDirs returns the base names of directories where `install` ran, in
// invocation order.
func (f *FakePM) InstallDirs(t *testing.T) []string {
	t.Helper()
	var dirs []string
	for _, c := range f.Calls(t) {
		dir, args, ok := strings.Cut(c, " ")
		if ok && strings.HasPrefix(args, "install") {
			dirs = append(dirs, filepath.Base(dir))
		}
	}
	return dirs
}
