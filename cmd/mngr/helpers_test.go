package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/organiclever/the-organic/internal/testutil"
)

// setupWorkspace creates a workspace with libs/hello and apps/web and points
// the package manager at a fake.
func setupWorkspace(t *testing.T) (string, *testutil.FakePM) {
	t.Helper()
	pm := testutil.NewFakePM(t, "9.1.2")
	t.Setenv("MNGR_PACKAGE_MANAGER", pm.Path)

	root := testutil.NewWorkspace(t, "")
	testutil.AddProject(t, root, "libs", "hello", `{"scripts": {"build": "tsc", "dev": "tsc -w"}}`)
	testutil.AddProject(t, root, "apps", "web", `{"scripts": {"dev": "vite"}}`)
	testutil.WriteFile(t, filepath.Join(root, "mngr.yaml"), "libs_namespace: libs\n")
	return root, pm
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{} // nil would fall back to os.Args
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	if testing.Verbose() && errOut.Len() > 0 {
		t.Log(errOut.String())
	}
	return out.String(), err
}

func readJSON(t *testing.T, path string) gjson.Result {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return gjson.ParseBytes(data)
}

func withoutTerminal(t *testing.T) {
	t.Helper()
	prev := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = prev })
}
