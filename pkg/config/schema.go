package config

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed frontlint-config.schema.json
var overrideSchema []byte

// ValidateOverride checks an override file against the embedded JSON Schema
// before it is merged over the defaults.
func ValidateOverride(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(overrideSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("override validation failed:\n%s", strings.Join(problems, "\n"))
	}

	return nil
}
