package discovery

import (
	"path/filepath"
	"strings"
)

// Separator joins the segments of a test-case identifier
const Separator = "."

// Identifier derives the test-case identifier of a file below root: the
// relative path without extension, separators replaced by Separator and
// prefixed with namespace. Files directly in root are rejected.
func Identifier(root, path, extension, namespace string) (string, bool) {
	rel, err := filepath.Rel(filepath.Clean(root), path)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if len(rel) >= len(extension) && strings.EqualFold(rel[len(rel)-len(extension):], extension) {
		rel = rel[:len(rel)-len(extension)]
	}

	if !strings.Contains(rel, "/") {
		return "", false
	}
	return namespace + Separator + strings.ReplaceAll(rel, "/", Separator), true
}
