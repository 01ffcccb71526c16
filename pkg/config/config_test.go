package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	rs := Default()

	assert.Equal(t, []string{"title", "emoji", "type", "topics", "published", "published_at"}, rs.CanonicalOrder)
	assert.Equal(t, []string{"title", "emoji", "type", "topics", "published"}, rs.RequiredFor("article"))
	assert.Equal(t, []string{"title"}, rs.RequiredFor("book_chapter"))
	assert.Empty(t, rs.RequiredFor("default"))
	assert.Equal(t, 12, rs.SlugMinLen)
	assert.Equal(t, 50, rs.SlugMaxLen)
	require.Len(t, rs.ClassificationPatterns, 2)
	assert.Equal(t, "article", rs.ClassificationPatterns[0].Type)
}

func TestLoadWithoutOverrideFile(t *testing.T) {
	dir := t.TempDir()

	rs, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), rs)
}

func TestLoadShallowMerge(t *testing.T) {
	dir := t.TempDir()
	override := `{"canonical_order": ["title", "published"], "globs": ["posts/**/*.md"]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, OverrideFileName), []byte(override), 0o644))

	rs, err := Load(dir, "")
	require.NoError(t, err)

	// Provided keys replace defaults.
	assert.Equal(t, []string{"title", "published"}, rs.CanonicalOrder)
	assert.Equal(t, []string{"posts/**/*.md"}, rs.Globs)
	// Omitted keys keep default values.
	assert.Equal(t, Default().RequiredByType, rs.RequiredByType)
	assert.Equal(t, Default().BookManifestRequired, rs.BookManifestRequired)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")
	override := `{
		"required_by_type": {"article": ["title"]},
		"classification_patterns": [
			{"type": "note", "patterns": ["notes/"]},
			{"type": "article", "patterns": ["articles/"]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o644))

	rs, err := Load(dir, path)
	require.NoError(t, err)

	assert.Equal(t, []string{"title"}, rs.RequiredFor("article"))
	require.Len(t, rs.ClassificationPatterns, 2)
	assert.Equal(t, "note", rs.ClassificationPatterns[0].Type)
	assert.Equal(t, []string{"notes/"}, rs.ClassificationPatterns[0].Patterns)
}

func TestLoadMalformedOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, OverrideFileName), []byte("{nope"), 0o644))

	rs, err := Load(dir, "")
	assert.Error(t, err)
	// A bad override is never fatal: defaults are still usable.
	assert.Equal(t, Default(), rs)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	dir := t.TempDir()

	rs, err := Load(dir, filepath.Join(dir, "absent.json"))
	assert.Error(t, err)
	assert.Equal(t, Default(), rs)
}

func TestValidateOverride(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "empty object", input: `{}`},
		{name: "valid keys", input: `{"canonical_order": ["title"], "book_manifest_required": ["title"]}`},
		{name: "unknown key rejected", input: `{"canonicalOrder": ["title"]}`, wantErr: true},
		{name: "wrong type rejected", input: `{"canonical_order": "title"}`, wantErr: true},
		{name: "bad pattern entry rejected", input: `{"classification_patterns": [{"type": "x"}]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOverride([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
