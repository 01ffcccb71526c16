// Package frontmatter reads and writes markdown documents that carry a YAML
// metadata block between --- delimiters, preserving the key order the author
// wrote.
package frontmatter

import (
	"bytes"
	"fmt"
)

const delim = "---\n"

// Document is a parsed markdown document: its metadata mapping plus the
// opaque body that follows the closing delimiter.
type Document struct {
	Meta *Mapping
	Body []byte
}

// Split separates a markdown document into raw YAML frontmatter bytes and
// body. The document must begin with "---\n"; the closing "---" line ends
// the block.
func Split(data []byte) (meta []byte, body []byte, err error) {
	if !bytes.HasPrefix(data, []byte(delim)) {
		return nil, nil, fmt.Errorf("frontmatter: missing opening --- delimiter")
	}
	rest := data[len(delim):]
	idx := bytes.Index(rest, []byte("\n---"))
	if idx < 0 {
		return nil, nil, fmt.Errorf("frontmatter: missing closing --- delimiter")
	}
	fm := rest[:idx]
	// Skip past closing delimiter and optional newline.
	tail := rest[idx+4:]
	if len(tail) > 0 && tail[0] == '\n' {
		tail = tail[1:]
	}
	return fm, tail, nil
}

// Parse splits data and decodes the metadata block into an ordered Mapping.
func Parse(data []byte) (*Document, error) {
	raw, body, err := Split(data)
	if err != nil {
		return nil, err
	}
	meta, err := DecodeMapping(raw)
	if err != nil {
		return nil, err
	}
	return &Document{Meta: meta, Body: body}, nil
}

// Encode serializes the document back to markdown: the metadata mapping in
// its current key order between --- delimiters, followed by the body.
func (d *Document) Encode() ([]byte, error) {
	fm, err := d.Meta.Encode()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(delim)
	buf.Write(fm)
	buf.WriteString("---\n")
	buf.Write(d.Body)
	return buf.Bytes(), nil
}
