package lint

import (
	"path/filepath"
	"strings"

	"github.com/frontlint/frontlint/pkg/config"
)

// Classify maps a file path to a content-type label. The separator-normalized
// path is tested against each type's substrings in declaration order; the
// first type with a match wins, and no match yields DefaultType. Pure and
// total: it never fails.
func Classify(path string, patterns []config.TypePatterns) string {
	normalized := filepath.ToSlash(path)
	for _, tp := range patterns {
		for _, sub := range tp.Patterns {
			if strings.Contains(normalized, sub) {
				return tp.Type
			}
		}
	}
	return DefaultType
}
