// Package config holds the rule set frontlint validates against: canonical
// key order, per-type required keys, path classification patterns, book
// manifest requirements, and discovery globs. Defaults can be shallowly
// overridden by a project-level JSON file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// OverrideFileName is the project-level override file probed in the target
// directory when no --config path is given.
const OverrideFileName = ".frontlint.json"

// ManifestFileName is the fixed name of a book directory's manifest.
const ManifestFileName = "config.yaml"

// TypePatterns associates a content-type label with the path substrings that
// classify a file as that type. Declaration order decides match precedence.
type TypePatterns struct {
	Type     string   `mapstructure:"type" json:"type"`
	Patterns []string `mapstructure:"patterns" json:"patterns"`
}

// RuleSet is the immutable per-run configuration. Construct one with
// Default or Load and treat it as read-only afterwards.
type RuleSet struct {
	CanonicalOrder         []string            `mapstructure:"canonical_order" json:"canonical_order"`
	RequiredByType         map[string][]string `mapstructure:"required_by_type" json:"required_by_type"`
	ClassificationPatterns []TypePatterns      `mapstructure:"classification_patterns" json:"classification_patterns"`
	BookManifestRequired   []string            `mapstructure:"book_manifest_required" json:"book_manifest_required"`
	Globs                  []string            `mapstructure:"globs" json:"globs"`

	// Slug bounds are fixed by the publishing convention and not overridable.
	SlugMinLen int `mapstructure:"-" json:"-"`
	SlugMaxLen int `mapstructure:"-" json:"-"`
}

// Default returns the built-in rule set.
func Default() *RuleSet {
	return &RuleSet{
		CanonicalOrder: []string{"title", "emoji", "type", "topics", "published", "published_at"},
		RequiredByType: map[string][]string{
			"article":      {"title", "emoji", "type", "topics", "published"},
			"book_chapter": {"title"},
		},
		ClassificationPatterns: []TypePatterns{
			{Type: "article", Patterns: []string{"articles/"}},
			{Type: "book_chapter", Patterns: []string{"books/"}},
		},
		BookManifestRequired: []string{"title", "summary", "topics", "published"},
		Globs:                []string{"articles/**/*.md", "books/**/*.md"},
		SlugMinLen:           12,
		SlugMaxLen:           50,
	}
}

// Load returns the default rule set merged with the override file, if one
// exists. overridePath wins over the probed project-level file; an empty
// overridePath probes targetDir for OverrideFileName.
//
// A malformed override never fails the run: Load returns usable defaults
// together with the error so the caller can log it once and proceed.
func Load(targetDir, overridePath string) (*RuleSet, error) {
	rs := Default()

	path := overridePath
	if path == "" {
		probe := filepath.Join(targetDir, OverrideFileName)
		if _, err := os.Stat(probe); err != nil {
			return rs, nil
		}
		path = probe
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		return rs, fmt.Errorf("read override %s: %w", path, err)
	}

	if err := ValidateOverride(data); err != nil {
		return rs, fmt.Errorf("override %s: %w", path, err)
	}

	if err := rs.merge(data); err != nil {
		return Default(), fmt.Errorf("override %s: %w", path, err)
	}
	return rs, nil
}

// merge applies a shallow override: only top-level keys present in the file
// replace defaults, omitted keys keep their default values.
func (rs *RuleSet) merge(data []byte) error {
	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if v.IsSet("canonical_order") {
		rs.CanonicalOrder = v.GetStringSlice("canonical_order")
	}
	if v.IsSet("required_by_type") {
		required := make(map[string][]string)
		if err := v.UnmarshalKey("required_by_type", &required); err != nil {
			return fmt.Errorf("required_by_type: %w", err)
		}
		rs.RequiredByType = required
	}
	if v.IsSet("classification_patterns") {
		var patterns []TypePatterns
		if err := v.UnmarshalKey("classification_patterns", &patterns); err != nil {
			return fmt.Errorf("classification_patterns: %w", err)
		}
		rs.ClassificationPatterns = patterns
	}
	if v.IsSet("book_manifest_required") {
		rs.BookManifestRequired = v.GetStringSlice("book_manifest_required")
	}
	if v.IsSet("globs") {
		rs.Globs = v.GetStringSlice("globs")
	}
	return nil
}

// RequiredFor returns the required keys for a content type, empty for an
// unknown type.
func (rs *RuleSet) RequiredFor(typeLabel string) []string {
	return rs.RequiredByType[typeLabel]
}
