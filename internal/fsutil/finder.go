// Package fsutil provides file system helpers for locating workbooks.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// LockFilePrefix marks the temporary owner files office suites leave next to
// an open workbook.
const LockFilePrefix = "~$"

// FindFilesByExtension returns every file under root whose name ends with
// extension, in lexical order. If root is itself a matching file it is the
// only result. Names starting with LockFilePrefix are skipped.
func FindFilesByExtension(root string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if matches(info.Name(), extension) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && matches(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}

// Resolve joins path onto root unless path is already absolute.
func Resolve(root, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

// Exists reports whether path can be stat'ed.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func matches(name, extension string) bool {
	return strings.HasSuffix(name, extension) && !strings.HasPrefix(name, LockFilePrefix)
}
