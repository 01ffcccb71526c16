package lint

import "github.com/frontlint/frontlint/pkg/frontmatter"

// Normalize returns a new mapping with canonical-order keys first (only
// those present, in canonical sequence) followed by every remaining key in
// its original relative order. Values are carried unchanged; the input is
// not modified. Idempotent.
func Normalize(meta *frontmatter.Mapping, canonical []string) *frontmatter.Mapping {
	out := frontmatter.NewMapping()
	for _, key := range canonical {
		if v, ok := meta.Get(key); ok {
			out.Set(key, v)
		}
	}
	for _, key := range meta.Keys() {
		if !out.Has(key) {
			v, _ := meta.Get(key)
			out.Set(key, v)
		}
	}
	return out
}
