// Package scan enumerates the files under a root path.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// Discover walks root, collects regular-file paths (descending into
// subdirectories), and returns them sorted lexicographically for
// deterministic processing order. It applies no filtering beyond the
// file/directory distinction; callers decide what to skip.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
