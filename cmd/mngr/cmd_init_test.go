package main

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/organiclever/the-organic/internal/workspace"
)

func TestRunInit(t *testing.T) {
	root, pm := setupWorkspace(t)

	out, err := execute(t, "--root", root, "init")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "Workspace initialized") {
		t.Errorf("output = %q", out)
	}

	scripts := readJSON(t, filepath.Join(root, "package.json")).Get("scripts").Map()
	if got := scripts["libs:build"].String(); got != "cd libs/hello && tsc" {
		t.Errorf("libs:build = %q", got)
	}
	if got := scripts["web:dev"].String(); got != "cd apps/web && vite" {
		t.Errorf("web:dev = %q", got)
	}
	dev := scripts["dev"].String()
	if !strings.HasPrefix(dev, "concurrently ") || !strings.Contains(dev, "run libs:dev") || !strings.Contains(dev, "run web:dev") {
		t.Errorf("dev = %q", dev)
	}

	dirs := pm.InstallDirs(t)
	if !slices.Contains(dirs, "hello") || !slices.Contains(dirs, "web") {
		t.Errorf("install dirs = %v", dirs)
	}
}

func TestRunInit_fromNestedDirectory(t *testing.T) {
	root, pm := setupWorkspace(t)

	if _, err := execute(t, "--root", filepath.Join(root, "apps", "web"), "init", "--skip-install"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "package.json")); err != nil {
		t.Error("root manifest not written at the workspace root")
	}
	if len(pm.InstallDirs(t)) != 0 {
		t.Error("--skip-install still installed")
	}
}

func TestRunInit_legacyFlag(t *testing.T) {
	root, _ := setupWorkspace(t)
	if _, err := execute(t, "--root", root, "--init"); err != nil {
		t.Fatalf("--init failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "apps", "web", "node_modules")); err != nil {
		t.Error("apps not installed")
	}
}

func TestRunInit_rootNotFound(t *testing.T) {
	_, err := execute(t, "--root", t.TempDir(), "init")
	if !errors.Is(err, workspace.ErrRootNotFound) {
		t.Fatalf("err = %v, want ErrRootNotFound", err)
	}
}

func TestRunInit_installFailure(t *testing.T) {
	root, _ := setupWorkspace(t)
	if err := os.WriteFile(filepath.Join(root, "apps", "web", ".fail-install"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "--root", root, "init")
	if err == nil || !strings.Contains(err.Error(), "apps/web") {
		t.Fatalf("err = %v, want failure naming apps/web", err)
	}
}

func TestRoot_noFlagsPrintsHelp(t *testing.T) {
	out, err := execute(t)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "mngr") || !strings.Contains(out, "init") {
		t.Errorf("help output = %q", out)
	}
}
