package lint

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/frontlint/frontlint/pkg/config"
	"github.com/frontlint/frontlint/pkg/frontmatter"
)

// slugCharset is the character class a slug may use. Length bounds come from
// the rule set.
const slugCharset = "a-z0-9_-"

// Validate checks a parsed document against the rule set: required keys for
// its content type, canonical relative ordering of present keys, and (for
// articles) slug well-formedness. It has no side effects and never fails;
// unreadable or unparseable files are the engine's concern.
func Validate(path string, meta *frontmatter.Mapping, typeLabel string, rules *config.RuleSet) FileResult {
	result := FileResult{
		Path:        path,
		ContentType: typeLabel,
		Keys:        meta.Keys(),
	}

	for _, key := range rules.RequiredFor(typeLabel) {
		if !meta.Has(key) {
			result.Missing = append(result.Missing, key)
		}
	}

	result.WrongOrder = !inCanonicalOrder(result.Keys, rules.CanonicalOrder)

	if typeLabel == "article" {
		slug := Slug(path)
		if !ValidSlug(slug, rules) {
			result.SlugInvalid = true
			result.SlugMessage = fmt.Sprintf("slug %q must be %d-%d characters of [%s]",
				slug, rules.SlugMinLen, rules.SlugMaxLen, slugCharset)
		}
	}

	return result
}

// inCanonicalOrder walks the observed key sequence pairwise. A pair is exempt
// when either key is absent from the canonical order; otherwise the earlier
// key's canonical position must be strictly less than the later one's. A
// single violation fails the whole sequence; empty and single-key sequences
// are trivially ordered.
func inCanonicalOrder(keys []string, canonical []string) bool {
	pos := make(map[string]int, len(canonical))
	for i, key := range canonical {
		pos[key] = i
	}
	for i := 1; i < len(keys); i++ {
		prev, prevOK := pos[keys[i-1]]
		curr, currOK := pos[keys[i]]
		if !prevOK || !currOK {
			continue
		}
		if prev >= curr {
			return false
		}
	}
	return true
}

// Slug derives a document's slug: the base file name minus its extension.
func Slug(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ValidSlug reports whether slug is a full match of the slug rule.
func ValidSlug(slug string, rules *config.RuleSet) bool {
	re := regexp.MustCompile(fmt.Sprintf("^[%s]{%d,%d}$", slugCharset, rules.SlugMinLen, rules.SlugMaxLen))
	return re.MatchString(slug)
}
