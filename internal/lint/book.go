package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/frontlint/frontlint/pkg/config"
)

// numberedChapter matches chapter files of the form <digits>.<slug>.md.
var numberedChapter = regexp.MustCompile(`^\d+\.(.+)\.md$`)

// chapterPrefix strips the numeric prefix from an already-extensionless name.
var chapterPrefix = regexp.MustCompile(`^\d+\.`)

// ChapterSlug derives a chapter slug from a file name: the extension is
// stripped, then a numeric <digits>. prefix when present. The same rule
// serves explicit manifests and the filename-derived fallback.
func ChapterSlug(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return chapterPrefix.ReplaceAllString(base, "")
}

// ValidateBook validates the manifest of one book directory. A missing
// manifest is terminal; an unparseable one fails closed, reporting every
// required key missing. Chapter checks follow the manifest's chapters field:
// an explicit non-empty list is checked descriptor by descriptor, an empty
// list switches to filename-derived ordering over the directory's markdown
// files.
func ValidateBook(dir string, rules *config.RuleSet) BookResult {
	result := BookResult{Dir: dir}

	manifestPath := filepath.Join(dir, config.ManifestFileName)
	data, err := os.ReadFile(manifestPath) // #nosec G304 -- path is rooted in the discovered book dir
	if err != nil {
		result.MissingConfigFile = true
		return result
	}

	var manifest map[string]interface{}
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		// Fail closed: an unparseable manifest is maximally invalid.
		result.MissingKeys = append(result.MissingKeys, rules.BookManifestRequired...)
		return result
	}

	for _, key := range rules.BookManifestRequired {
		if _, ok := manifest[key]; !ok {
			result.MissingKeys = append(result.MissingKeys, key)
		}
	}

	chapters, ok := manifest["chapters"]
	if !ok {
		return result
	}

	list, ok := chapters.([]interface{})
	if !ok {
		result.InvalidChapters = true
		result.ChapterMessages = append(result.ChapterMessages, "chapters must be a list")
		return result
	}

	if len(list) == 0 {
		validateDerivedChapters(dir, &result)
		return result
	}

	validateExplicitChapters(list, &result)
	return result
}

// validateExplicitChapters checks each descriptor for file and title, and
// independently flags slugs repeated across descriptors.
func validateExplicitChapters(list []interface{}, result *BookResult) {
	var files []string
	for i, entry := range list {
		chapter, ok := entry.(map[string]interface{})
		if !ok {
			result.InvalidChapters = true
			result.ChapterMessages = append(result.ChapterMessages,
				fmt.Sprintf("chapter %d: each chapter needs file and title", i+1))
			continue
		}
		file, hasFile := chapter["file"].(string)
		_, hasTitle := chapter["title"]
		if !hasFile || !hasTitle {
			result.InvalidChapters = true
			result.ChapterMessages = append(result.ChapterMessages,
				fmt.Sprintf("chapter %d: each chapter needs file and title", i+1))
		}
		if hasFile {
			files = append(files, file)
		}
	}
	result.DuplicateSlugs = duplicateSlugs(files)
}

// validateDerivedChapters enters the fallback mode: chapter order comes from
// numerically prefixed filenames in the book directory.
func validateDerivedChapters(dir string, result *BookResult) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		result.InvalidChapters = true
		result.ChapterMessages = append(result.ChapterMessages,
			fmt.Sprintf("cannot list book directory: %v", err))
		return
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	if len(files) == 0 {
		result.InvalidChapters = true
		result.ChapterMessages = append(result.ChapterMessages, "no chapter files found")
		return
	}

	numbered := 0
	for _, name := range files {
		if numberedChapter.MatchString(name) {
			numbered++
		}
	}
	if numbered != len(files) {
		result.InvalidChapters = true
		result.ChapterMessages = append(result.ChapterMessages,
			"inconsistent chapter naming: unify all files to the <number>.<slug>.md form")
		return
	}

	result.DuplicateSlugs = duplicateSlugs(files)
}

// duplicateSlugs returns every slug that appears more than once across the
// given chapter file names, in first-seen order.
func duplicateSlugs(files []string) []string {
	seen := make(map[string]int, len(files))
	var order []string
	for _, name := range files {
		slug := ChapterSlug(name)
		if seen[slug] == 0 {
			order = append(order, slug)
		}
		seen[slug]++
	}
	var dups []string
	for _, slug := range order {
		if seen[slug] > 1 {
			dups = append(dups, slug)
		}
	}
	return dups
}
