// Package scanner discovers candidate files for conversion.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
)

// Scanner walks a directory tree collecting files by extension.
type Scanner struct {
	rootDir    string
	extensions []string
}

// New creates a Scanner rooted at rootDir. With no extensions every
// file matches.
func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan returns the matching file paths in sorted order, so batch output
// is stable across runs.
func (s *Scanner) Scan() ([]string, error) {
	var files []string

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if s.isTargetFile(path) {
			files = append(files, path)
		}
		return nil
	})

	sort.Strings(files)
	return files, err
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
