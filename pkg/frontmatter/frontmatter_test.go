package frontmatter

import (
	"bytes"
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		wantMeta string
		wantBody string
		wantErr  bool
	}{
		{
			name:     "frontmatter and body",
			input:    []byte("---\ntitle: Hello\n---\n# Heading\n"),
			wantMeta: "title: Hello",
			wantBody: "# Heading\n",
		},
		{
			name:     "frontmatter without body",
			input:    []byte("---\ntitle: Hello\n---\n"),
			wantMeta: "title: Hello",
			wantBody: "",
		},
		{
			name:    "missing opening delimiter",
			input:   []byte("title: Hello\n---\n"),
			wantErr: true,
		},
		{
			name:    "missing closing delimiter",
			input:   []byte("---\ntitle: Hello\n"),
			wantErr: true,
		},
		{
			name:    "empty document",
			input:   []byte(""),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := Split(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Split(%q) expected error but got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Split(%q) unexpected error: %v", tt.input, err)
			}
			if string(meta) != tt.wantMeta {
				t.Errorf("meta = %q, expected %q", meta, tt.wantMeta)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, expected %q", body, tt.wantBody)
			}
		})
	}
}

func TestParsePreservesKeyOrder(t *testing.T) {
	input := []byte("---\nemoji: \"🦁\"\ntitle: T\npublished: true\ntype: tech\n---\nbody\n")
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	want := []string{"emoji", "title", "published", "type"}
	if got := doc.Meta.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, expected %v", got, want)
	}
	if string(doc.Body) != "body\n" {
		t.Errorf("Body = %q, expected %q", doc.Body, "body\n")
	}
}

func TestParseRejectsNonMapping(t *testing.T) {
	if _, err := Parse([]byte("---\n- a\n- b\n---\nbody\n")); err == nil {
		t.Fatal("Parse() should reject a sequence frontmatter block")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	input := []byte("---\ntype: tech\ntitle: How it works\ntopics:\n  - go\n  - yaml\npublished: false\n---\n# Body\n\ntext\n")
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	out, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	again, err := Parse(out)
	if err != nil {
		t.Fatalf("re-Parse() failed: %v", err)
	}

	if !reflect.DeepEqual(again.Meta.Keys(), doc.Meta.Keys()) {
		t.Errorf("round-trip keys = %v, expected %v", again.Meta.Keys(), doc.Meta.Keys())
	}
	for _, key := range doc.Meta.Keys() {
		want, _ := doc.Meta.Get(key)
		got, _ := again.Meta.Get(key)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("round-trip value for %q = %v, expected %v", key, got, want)
		}
	}
	if !bytes.Equal(again.Body, doc.Body) {
		t.Errorf("round-trip body = %q, expected %q", again.Body, doc.Body)
	}
}

func TestMappingSetKeepsPosition(t *testing.T) {
	m := NewMapping()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3)

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Keys() = %v, expected [a b]", got)
	}
	if v, _ := m.Get("a"); v != 3 {
		t.Errorf("Get(a) = %v, expected 3", v)
	}
}

func TestDecodeMappingEmpty(t *testing.T) {
	m, err := DecodeMapping([]byte("  \n"))
	if err != nil {
		t.Fatalf("DecodeMapping() failed: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", m.Len())
	}
}
