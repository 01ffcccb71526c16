package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/frontlint/frontlint/pkg/buildinfo"
	"github.com/frontlint/frontlint/pkg/config"
	"github.com/frontlint/frontlint/pkg/frontmatter"
	"github.com/frontlint/frontlint/pkg/logger"
	"github.com/frontlint/frontlint/pkg/safeio"
)

// booksRoot is the fixed directory whose immediate children are book
// directories.
const booksRoot = "books"

// Engine runs a full validation pass over one content tree. The rule set is
// read-only shared state; every file and book result is computed
// independently, so processing order never changes outcomes.
type Engine struct {
	target string
	rules  *config.RuleSet
	fix    bool
}

// NewEngine creates an engine for the given target directory.
func NewEngine(target string, rules *config.RuleSet, fix bool) *Engine {
	return &Engine{target: target, rules: rules, fix: fix}
}

// Run discovers documents and book directories under the target, validates
// each, and aggregates the results. In fix mode, a file whose only problem
// is key ordering is rewritten in canonical order. Only an unusable target
// directory fails the run; per-item I/O errors are recorded and skipped.
func (e *Engine) Run() (*Report, error) {
	start := time.Now()

	if info, err := os.Stat(e.target); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("target %s is not a directory", e.target)
	}

	report := &Report{
		Metadata: ReportMetadata{
			GeneratedAt: start,
			Tool:        "frontlint",
			Version:     buildinfo.BinaryVersion,
			Target:      e.target,
		},
	}

	for _, rel := range e.discoverFiles() {
		report.Files = append(report.Files, e.checkFile(rel))
	}
	for _, rel := range e.discoverBooks() {
		result := ValidateBook(filepath.Join(e.target, rel), e.rules)
		result.Dir = rel
		report.Books = append(report.Books, result)
	}

	report.Metadata.ExecutionTime = time.Since(start)
	logger.Debug("run complete",
		logger.Int("files", len(report.Files)),
		logger.Int("books", len(report.Books)))
	return report, nil
}

// discoverFiles resolves the rule set's globs against the target directory
// and returns a sorted, deduplicated list of relative paths.
func (e *Engine) discoverFiles() []string {
	fsys := os.DirFS(e.target)
	seen := make(map[string]bool)
	var files []string
	for _, glob := range e.rules.Globs {
		matches, err := doublestar.Glob(fsys, glob, doublestar.WithFilesOnly())
		if err != nil {
			logger.Warn("bad glob pattern, skipping", logger.String("glob", glob), logger.Err(err))
			continue
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files
}

// discoverBooks returns the immediate child directories of books/, relative
// to the target.
func (e *Engine) discoverBooks() []string {
	entries, err := os.ReadDir(filepath.Join(e.target, booksRoot))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("cannot list books directory", logger.Err(err))
		}
		return nil
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(booksRoot, entry.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs
}

// checkFile reads, parses, and validates one document. Read and parse
// failures are reported as the I/O error class, not as validation findings.
func (e *Engine) checkFile(rel string) FileResult {
	typeLabel := Classify(rel, e.rules.ClassificationPatterns)

	abs := filepath.Join(e.target, rel)
	data, err := safeio.ReadFileContained(e.target, abs)
	if err != nil {
		logger.Error("cannot read file", logger.String("path", rel), logger.Err(err))
		return FileResult{Path: rel, ContentType: typeLabel, IOError: err.Error()}
	}

	doc, err := frontmatter.Parse(data)
	if err != nil {
		logger.Error("cannot parse frontmatter", logger.String("path", rel), logger.Err(err))
		return FileResult{Path: rel, ContentType: typeLabel, IOError: err.Error()}
	}

	result := Validate(rel, doc.Meta, typeLabel, e.rules)

	if e.fix && result.WrongOrder && len(result.Missing) == 0 && !result.SlugInvalid {
		if err := e.rewrite(abs, doc); err != nil {
			logger.Error("fix failed", logger.String("path", rel), logger.Err(err))
		} else {
			result.Fixed = true
			logger.Info("reordered frontmatter", logger.String("path", rel))
		}
	}

	return result
}

// rewrite re-serializes the document with its metadata in canonical order,
// preserving the original file mode.
func (e *Engine) rewrite(abs string, doc *frontmatter.Document) error {
	doc.Meta = Normalize(doc.Meta, e.rules.CanonicalOrder)
	out, err := doc.Encode()
	if err != nil {
		return err
	}
	return safeio.WriteFilePreservePerms(abs, out)
}
