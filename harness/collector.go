package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// isSuiteFile reports whether path names a YAML greeting suite.
func isSuiteFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// CollectSuiteFiles expands paths into the YAML suites they name. Directories
// are searched recursively; files given explicitly must be YAML. The result
// is sorted and free of duplicates so runs are reproducible.
func CollectSuiteFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if !isSuiteFile(path) {
				return nil, fmt.Errorf("%s: not a YAML suite", path)
			}
			files = append(files, filepath.Clean(path))
			continue
		}
		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err == nil && !d.IsDir() && isSuiteFile(p) {
				files = append(files, p)
			}
			return err
		})
		if err != nil {
			return nil, err
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}
