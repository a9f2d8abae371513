// Package artifacts deletes generated dependency directories from a tree.
package artifacts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// Options selects what Remove deletes and where it does not descend.
type Options struct {
	// Name is the artifact directory name, e.g. "node_modules".
	Name string
	// SkipNames are directory base names never descended into, e.g. ".git".
	SkipNames []string
	// SkipPaths are absolute directories never descended into.
	SkipPaths []string
}

// Remove deletes every directory called opts.Name under dir, depth first,
// and returns how many it removed. Symlinked directories are not followed.
// A missing dir is not an error, so Remove is idempotent.
func Remove(dir string, opts Options) (int, error) {
	if opts.Name == "" {
		return 0, errors.New("artifact directory name is empty")
	}
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading %s: %w", dir, err)
	}
	if !info.IsDir() {
		return 0, nil
	}
	n := 0
	err = remove(dir, &opts, &n)
	return n, err
}

func remove(dir string, opts *Options, n *int) error {
	target := filepath.Join(dir, opts.Name)
	if info, err := os.Lstat(target); err == nil {
		if info.IsDir() || info.Mode()&fs.ModeSymlink != 0 {
			if err := os.RemoveAll(target); err != nil {
				return fmt.Errorf("removing %s: %w", target, err)
			}
			*n++
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", target, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, e := range entries {
		// DirEntry types come from lstat, so symlinks are never IsDir.
		if !e.IsDir() || e.Name() == opts.Name || slices.Contains(opts.SkipNames, e.Name()) {
			continue
		}
		child := filepath.Join(dir, e.Name())
		if slices.Contains(opts.SkipPaths, child) {
			continue
		}
		if err := remove(child, opts, n); err != nil {
			return err
		}
	}
	return nil
}
