package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/organiclever/the-organic/internal/config"
	"github.com/organiclever/the-organic/internal/testutil"
)

func TestFindRoot(t *testing.T) {
	root := testutil.NewWorkspace(t, "")
	nested := filepath.Join(root, "apps", "web", "src")
	testutil.MkdirAll(t, nested)

	tests := []struct {
		name  string
		start string
	}{
		{"root itself", root},
		{"nested", nested},
		{"collection", filepath.Join(root, "apps")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRoot(tt.start, "package-tmpl.json")
			if err != nil {
				t.Fatalf("FindRoot() error: %v", err)
			}
			want, _ := filepath.Abs(root)
			if got != want {
				t.Errorf("FindRoot() = %q, want %q", got, want)
			}
		})
	}
}

func TestFindRoot_notFound(t *testing.T) {
	dir := t.TempDir()
	_, err := FindRoot(dir, "definitely-not-here-6c1e.json")
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("FindRoot() error = %v, want ErrRootNotFound", err)
	}
}

func TestFindRoot_ignoresDirectoryNamedLikeSentinel(t *testing.T) {
	root := testutil.NewWorkspace(t, "")
	inner := filepath.Join(root, "inner")
	testutil.MkdirAll(t, filepath.Join(inner, "marker.json"))
	testutil.WriteFile(t, filepath.Join(root, "marker.json"), "{}")

	got, err := FindRoot(inner, "marker.json")
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Errorf("FindRoot() = %q, want %q", got, root)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	testutil.AddProject(t, root, "apps", "web", `{}`)
	testutil.AddProject(t, root, "apps", "api", `{}`)
	testutil.MkdirAll(t, filepath.Join(root, "apps", "docs")) // no manifest
	testutil.WriteFile(t, filepath.Join(root, "apps", "README.md"), "# apps")

	got, err := Discover(root, "apps", "package.json")
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Discover() returned %d projects, want 2: %+v", len(got), got)
	}
	if got[0].Name != "api" || got[1].Name != "web" {
		t.Errorf("order = %s, %s; want api, web", got[0].Name, got[1].Name)
	}
	if got[1].RelPath != "apps/web" {
		t.Errorf("RelPath = %q, want apps/web", got[1].RelPath)
	}
	if got[1].RelManifest() != "apps/web/package.json" {
		t.Errorf("RelManifest() = %q", got[1].RelManifest())
	}
	if got[1].Dir != filepath.Join(root, "apps", "web") {
		t.Errorf("Dir = %q", got[1].Dir)
	}
}

func TestDiscover_missingCollection(t *testing.T) {
	got, err := Discover(t.TempDir(), "libs", "package.json")
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Discover() = %v, want empty", got)
	}
}

func TestDiscover_symlinkedProject(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(t.TempDir(), "shared")
	testutil.WriteFile(t, filepath.Join(target, "package.json"), `{}`)
	testutil.MkdirAll(t, filepath.Join(root, "libs"))
	if err := os.Symlink(target, filepath.Join(root, "libs", "shared")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := Discover(root, "libs", "package.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "shared" {
		t.Errorf("Discover() = %+v, want the symlinked project", got)
	}
}

func TestOpen(t *testing.T) {
	root := testutil.NewWorkspace(t, "")
	testutil.WriteFile(t, filepath.Join(root, config.FileName), "libs_namespace: libs\n")
	start := filepath.Join(root, "apps")
	testutil.MkdirAll(t, start)

	ctx, err := Open(start, "")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if ctx.Root != root {
		t.Errorf("Root = %q, want %q", ctx.Root, root)
	}
	if ctx.Config.LibsNamespace != "libs" {
		t.Errorf("workspace config not loaded: %+v", ctx.Config)
	}
	if ctx.ManifestPath() != filepath.Join(root, "package.json") {
		t.Errorf("ManifestPath() = %q", ctx.ManifestPath())
	}
	if ctx.TemplatePath() != filepath.Join(root, "package-tmpl.json") {
		t.Errorf("TemplatePath() = %q", ctx.TemplatePath())
	}
}

func TestNamespace(t *testing.T) {
	cfg := config.Default()
	cfg.LibsNamespace = "libs"
	ctx := New("/ws", &cfg)

	lib := SubProject{Name: "hello", Collection: "libs"}
	app := SubProject{Name: "web", Collection: "apps"}
	if got := ctx.Namespace(lib); got != "libs" {
		t.Errorf("Namespace(lib) = %q, want libs", got)
	}
	if got := ctx.Namespace(app); got != "web" {
		t.Errorf("Namespace(app) = %q, want web", got)
	}
}
