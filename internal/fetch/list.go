// ABOUTME: Lists loadable packages under <root>/node_modules, including @scope dirs
// ABOUTME: Directories without a readable manifest are skipped, matching the presence check

package fetch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// List returns the loadable packages installed under root, sorted by name.
// A missing node_modules directory yields an empty list.
func (f *Fetcher) List(root string) ([]InstalledPackageRef, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}
	dir := filepath.Join(abs, modulesDir)

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var refs []InstalledPackageRef
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !isDirEntry(dir, entry) {
			continue
		}
		if !strings.HasPrefix(name, "@") {
			refs = f.appendLoadable(refs, filepath.Join(dir, name))
			continue
		}

		scoped, err := os.ReadDir(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		for _, s := range scoped {
			if isDirEntry(filepath.Join(dir, name), s) {
				refs = f.appendLoadable(refs, filepath.Join(dir, name, s.Name()))
			}
		}
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func (f *Fetcher) appendLoadable(refs []InstalledPackageRef, path string) []InstalledPackageRef {
	m, err := f.readManifest(path)
	if err != nil {
		return refs
	}
	return append(refs, InstalledPackageRef{Path: path, Name: m.Name, Version: m.Version})
}

// isDirEntry follows symlinks, which npm uses for linked local packages.
func isDirEntry(parent string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && fi.IsDir()
}
