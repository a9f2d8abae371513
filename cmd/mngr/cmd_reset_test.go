package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/organiclever/the-organic/internal/testutil"
)

func TestRunReset_requiresYesWithoutTerminal(t *testing.T) {
	root, _ := setupWorkspace(t)
	withoutTerminal(t)

	if _, err := execute(t, "--root", root, "reset"); err == nil {
		t.Fatal("expected error without --yes")
	}
}

func TestRunReset(t *testing.T) {
	root, _ := setupWorkspace(t)
	if _, err := execute(t, "--root", root, "init"); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(root, "apps", "web", "node_modules", "stale")
	testutil.WriteFile(t, stale, "")

	if _, err := execute(t, "--root", root, "reset", "--yes"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("node_modules content survived reset")
	}
	if _, err := os.Stat(filepath.Join(root, "package.json")); err != nil {
		t.Error("package.json not regenerated")
	}
	if _, err := os.Stat(filepath.Join(root, "apps", "web", "node_modules")); err != nil {
		t.Error("web not reinstalled")
	}
}

func TestRunReset_legacyFlagSkipsPrompt(t *testing.T) {
	root, _ := setupWorkspace(t)
	withoutTerminal(t)

	if _, err := execute(t, "--root", root, "--reset"); err != nil {
		t.Fatalf("--reset failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "package.json")); err != nil {
		t.Error("package.json not generated")
	}
}

func TestRunClean(t *testing.T) {
	root, _ := setupWorkspace(t)
	nm := filepath.Join(root, "libs", "hello", "node_modules")
	testutil.MkdirAll(t, nm)

	for range 2 {
		if _, err := execute(t, "--root", root, "clean"); err != nil {
			t.Fatalf("clean failed: %v", err)
		}
	}
	if _, err := os.Stat(nm); !os.IsNotExist(err) {
		t.Error("node_modules not removed")
	}
}
