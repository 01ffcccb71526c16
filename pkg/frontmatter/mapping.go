package frontmatter

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Mapping is a YAML mapping that remembers the order keys were encountered.
// The zero value is an empty, usable mapping.
type Mapping struct {
	keys   []string
	values map[string]interface{}
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]interface{})}
}

// DecodeMapping decodes raw YAML bytes into an ordered mapping. An empty or
// whitespace-only block decodes to an empty mapping.
func DecodeMapping(raw []byte) (*Mapping, error) {
	m := NewMapping()
	if len(bytes.TrimSpace(raw)) == 0 {
		return m, nil
	}
	if err := yaml.Unmarshal(raw, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Keys returns the keys in their current order. The returned slice is a copy.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Get returns the value for key and whether it was present.
func (m *Mapping) Get(key string) (interface{}, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores a value under key. A new key is appended to the order; an
// existing key keeps its position.
func (m *Mapping) Set(key string, value interface{}) {
	if m.values == nil {
		m.values = make(map[string]interface{})
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// UnmarshalYAML implements yaml.Unmarshaler, preserving the document's key
// order. A duplicate key keeps its first position; the later value wins.
func (m *Mapping) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("frontmatter: expected a mapping, got %s", kindName(node.Kind))
	}
	if m.values == nil {
		m.values = make(map[string]interface{})
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		var value interface{}
		if err := valNode.Decode(&value); err != nil {
			return fmt.Errorf("frontmatter: key %q: %w", keyNode.Value, err)
		}
		m.Set(keyNode.Value, value)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting keys in mapping order.
func (m *Mapping) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range m.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(m.values[key]); err != nil {
			return nil, fmt.Errorf("frontmatter: key %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// Encode serializes the mapping as a YAML block with two-space indentation
// and a trailing newline.
func (m *Mapping) Encode() ([]byte, error) {
	if m.Len() == 0 {
		return []byte{}, nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
