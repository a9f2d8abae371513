package workspace

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// SubProject is an immediate child of a collection directory that holds a
// manifest. Its identity is RelPath.
type SubProject struct {
	Name       string // directory name
	Collection string // collection directory name, e.g. "apps"
	RelPath    string // slash-separated path from the workspace root, e.g. "apps/web"
	Dir        string // absolute path
	Manifest   string // absolute path of the sub-project manifest
}

// RelManifest returns the manifest path relative to the workspace root.
func (sp SubProject) RelManifest() string {
	return path.Join(sp.RelPath, filepath.Base(sp.Manifest))
}

// Discover lists the sub-projects of root/collection, sorted by name.
// Children that are not directories or lack manifestName are skipped. A
// missing collection directory yields an empty slice and no error.
func Discover(root, collection, manifestName string) ([]SubProject, error) {
	dir := filepath.Join(root, collection)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	projects := make([]SubProject, 0, len(entries))
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		// Stat rather than e.IsDir() so symlinked project directories count.
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			continue
		}
		manifest := filepath.Join(p, manifestName)
		if !isFile(manifest) {
			continue
		}
		projects = append(projects, SubProject{
			Name:       e.Name(),
			Collection: collection,
			RelPath:    path.Join(filepath.ToSlash(collection), e.Name()),
			Dir:        p,
			Manifest:   manifest,
		})
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].Name < projects[j].Name })
	return projects, nil
}
