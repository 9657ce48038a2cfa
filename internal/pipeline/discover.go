package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// DiscoverOptions controls input enumeration.
type DiscoverOptions struct {
	Recursive bool   // Descend into subdirectories.
	Match     string // Glob on the base name; empty matches everything.
}

// Discover expands paths into the files to rename. A file argument is taken
// as-is; a directory contributes its immediate entries, or everything below
// it when Recursive is set. Directories are never returned. The result is
// de-duplicated and sorted lexicographically for deterministic processing
// order.
func Discover(fsys afero.Fs, paths []string, opts DiscoverOptions) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string, info os.FileInfo) error {
		// Symlinks are renamed as links; sockets, devices and pipes are left alone.
		if !info.Mode().IsRegular() && info.Mode()&os.ModeSymlink == 0 {
			return nil
		}
		if opts.Match != "" {
			ok, err := filepath.Match(opts.Match, info.Name())
			if err != nil {
				return fmt.Errorf("match %q: %w", opts.Match, err)
			}
			if !ok {
				return nil
			}
		}
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
		return nil
	}

	for _, root := range paths {
		info, err := fsys.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if err := add(root, info); err != nil {
				return nil, err
			}
			continue
		}

		if opts.Recursive {
			err = afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				return add(path, info)
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		entries, err := afero.ReadDir(fsys, root)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if err := add(filepath.Join(root, entry.Name()), entry); err != nil {
				return nil, err
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
