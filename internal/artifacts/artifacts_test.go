package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/organiclever/the-organic/internal/testutil"
)

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Lstat(path)
	return err == nil
}

func nodeModules(t *testing.T, dir string) string {
	t.Helper()
	nm := filepath.Join(dir, "node_modules")
	testutil.WriteFile(t, filepath.Join(nm, "left-pad", "index.js"), "module.exports = 1")
	return nm
}

func TestRemove_depthFirst(t *testing.T) {
	root := t.TempDir()
	top := nodeModules(t, root)
	deep := nodeModules(t, filepath.Join(root, "tools", "gen"))
	keep := filepath.Join(root, "src", "index.ts")
	testutil.WriteFile(t, keep, "export {}")

	n, err := Remove(root, Options{Name: "node_modules"})
	if err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if n != 2 {
		t.Errorf("Remove() removed %d, want 2", n)
	}
	if exists(t, top) || exists(t, deep) {
		t.Error("node_modules directories still present")
	}
	if !exists(t, keep) {
		t.Error("unrelated file was removed")
	}
}

func TestRemove_idempotent(t *testing.T) {
	root := t.TempDir()
	nodeModules(t, root)

	if _, err := Remove(root, Options{Name: "node_modules"}); err != nil {
		t.Fatal(err)
	}
	n, err := Remove(root, Options{Name: "node_modules"})
	if err != nil {
		t.Fatalf("second Remove() error: %v", err)
	}
	if n != 0 {
		t.Errorf("second Remove() removed %d", n)
	}
}

func TestRemove_missingDir(t *testing.T) {
	n, err := Remove(filepath.Join(t.TempDir(), "apps"), Options{Name: "node_modules"})
	if err != nil || n != 0 {
		t.Errorf("Remove() = %d, %v; want 0, nil", n, err)
	}
}

func TestRemove_skips(t *testing.T) {
	root := t.TempDir()
	inGit := nodeModules(t, filepath.Join(root, ".git", "hooks"))
	inApps := nodeModules(t, filepath.Join(root, "apps", "web"))
	rootNM := nodeModules(t, root)

	_, err := Remove(root, Options{
		Name:      "node_modules",
		SkipNames: []string{".git"},
		SkipPaths: []string{filepath.Join(root, "apps")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if exists(t, rootNM) {
		t.Error("root node_modules should be removed")
	}
	if !exists(t, inGit) || !exists(t, inApps) {
		t.Error("skipped directories were traversed")
	}
}

func TestRemove_doesNotFollowSymlinks(t *testing.T) {
	outside := t.TempDir()
	external := nodeModules(t, outside)

	root := t.TempDir()
	if err := os.Symlink(outside, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if _, err := Remove(root, Options{Name: "node_modules"}); err != nil {
		t.Fatal(err)
	}
	if !exists(t, external) {
		t.Error("Remove() followed a symlink out of the tree")
	}
}

func TestRemove_symlinkedArtifactRemovesLinkOnly(t *testing.T) {
	store := t.TempDir()
	testutil.WriteFile(t, filepath.Join(store, "pkg", "index.js"), "")

	root := t.TempDir()
	link := filepath.Join(root, "node_modules")
	if err := os.Symlink(store, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if _, err := Remove(root, Options{Name: "node_modules"}); err != nil {
		t.Fatal(err)
	}
	if exists(t, link) {
		t.Error("symlinked node_modules still present")
	}
	if !exists(t, filepath.Join(store, "pkg", "index.js")) {
		t.Error("symlink target contents were deleted")
	}
}
