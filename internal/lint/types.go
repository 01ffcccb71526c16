// Package lint implements the frontmatter validation engine: path
// classification, required-key and key-order checks, slug validation, book
// manifest validation, canonical reordering, and report aggregation.
package lint

import "time"

// DefaultType is the content type assigned when no classification pattern
// matches a path.
const DefaultType = "default"

// FileResult is the outcome of validating one document. An IOError is a
// distinct failure class: the file could not be read or its frontmatter
// could not be parsed, so no validation findings were computed for it.
type FileResult struct {
	Path        string   `json:"path"`
	ContentType string   `json:"content_type"`
	Missing     []string `json:"missing,omitempty"`
	WrongOrder  bool     `json:"wrong_order,omitempty"`
	Keys        []string `json:"keys,omitempty"`
	SlugInvalid bool     `json:"slug_invalid,omitempty"`
	SlugMessage string   `json:"slug_message,omitempty"`
	IOError     string   `json:"io_error,omitempty"`
	Fixed       bool     `json:"fixed,omitempty"`
}

// Erroring reports whether this file contributes to a failing run.
func (r *FileResult) Erroring() bool {
	return len(r.Missing) > 0 || r.WrongOrder || r.SlugInvalid || r.IOError != ""
}

// BookResult is the outcome of validating one book directory's manifest.
type BookResult struct {
	Dir               string   `json:"dir"`
	MissingConfigFile bool     `json:"missing_config_file,omitempty"`
	MissingKeys       []string `json:"missing_keys,omitempty"`
	InvalidChapters   bool     `json:"invalid_chapters,omitempty"`
	ChapterMessages   []string `json:"chapter_messages,omitempty"`
	DuplicateSlugs    []string `json:"duplicate_slugs,omitempty"`
}

// Erroring reports whether this book contributes to a failing run.
func (r *BookResult) Erroring() bool {
	return r.MissingConfigFile || len(r.MissingKeys) > 0 || r.InvalidChapters || len(r.DuplicateSlugs) > 0
}

// ReportMetadata describes the run that produced a report.
type ReportMetadata struct {
	GeneratedAt   time.Time     `json:"generated_at"`
	Tool          string        `json:"tool"`
	Version       string        `json:"version"`
	Target        string        `json:"target"`
	ExecutionTime time.Duration `json:"execution_time"`
}

// Report aggregates every per-file and per-book result of a run.
type Report struct {
	Metadata ReportMetadata `json:"metadata"`
	Files    []FileResult   `json:"files"`
	Books    []BookResult   `json:"books"`
}

// Erroring is a pure OR-reduction over the independent results; processing
// order never affects it.
func (r *Report) Erroring() bool {
	for i := range r.Files {
		if r.Files[i].Erroring() {
			return true
		}
	}
	for i := range r.Books {
		if r.Books[i].Erroring() {
			return true
		}
	}
	return false
}

// ErrorCount returns how many files and books have findings.
func (r *Report) ErrorCount() (files int, books int) {
	for i := range r.Files {
		if r.Files[i].Erroring() {
			files++
		}
	}
	for i := range r.Books {
		if r.Books[i].Erroring() {
			books++
		}
	}
	return files, books
}
