// Package fsutil provides file system helpers for discovering
// configuration and seed files.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DiscoverHCL expands the given paths into a flat, deduplicated list of
// .hcl files. A path naming an .hcl file is taken as-is; a path naming
// a directory is walked recursively. Paths that do not exist are
// skipped, so optional locations can be probed without pre-checking.
//
// The returned order is deterministic: caller path order first, then
// lexical order within each walked directory. Seed files are applied in
// this order, so catalogs that span files can rely on it.
func DiscoverHCL(paths ...string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, path := range paths {
		if path == "" {
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("fsutil: accessing %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) == ".hcl" {
				add(path)
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(p) == ".hcl" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("fsutil: walking %s: %w", path, err)
		}
	}

	return files, nil
}
