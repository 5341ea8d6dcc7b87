package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoTests is returned when the test root is absent or has no entries
var ErrNoTests = errors.New("no tests found")

var errStop = errors.New("stop scanning")

// Scanner scans for test source files in a directory
type Scanner struct {
	skipDirs  map[string]bool
	extension string
}

// NewScanner creates a new Scanner matching files with the given extension
// and skipping the given directory names
func NewScanner(extension string, skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap, extension: strings.ToLower(extension)}
}

// Scan checks the root directory and returns a lazy sequence of matching
// files in traversal order. A root that is absent, not a directory or empty
// yields ErrNoTests.
func (s *Scanner) Scan(root string) (iter.Seq2[string, error], error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, ErrNoTests
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read test path %s: %w", root, err)
	}
	if len(entries) == 0 {
		return nil, ErrNoTests
	}

	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && s.skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}

			if s.Matches(d.Name()) && !yield(path, nil) {
				return errStop
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			yield("", err)
		}
	}, nil
}

// Matches reports whether a file name carries the test source extension
func (s *Scanner) Matches(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), s.extension)
}
