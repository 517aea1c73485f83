// Package schema embeds the OpenAPI document of the platform API.
package schema

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var document []byte

// Raw returns the embedded YAML document.
func Raw() []byte {
	return slices.Clone(document)
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

// JSON returns doc serialized as JSON, as served on /openapi.json.
func JSON(doc *openapi3.T) ([]byte, error) {
	return json.Marshal(doc)
}

// Component returns the named component schema.
func Component(doc *openapi3.T, name string) (*openapi3.Schema, error) {
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("unknown schema %q", name)
	}
	return ref.Value, nil
}

// Properties returns the sorted property names of the named object schema.
func Properties(doc *openapi3.T, name string) ([]string, error) {
	s, err := Component(doc, name)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

// EnumValues returns the sorted tokens of the named enum schema.
func EnumValues(doc *openapi3.T, name string) ([]string, error) {
	s, err := Component(doc, name)
	if err != nil {
		return nil, err
	}
	if len(s.Enum) == 0 {
		return nil, fmt.Errorf("schema %q is not an enum", name)
	}
	out := make([]string, 0, len(s.Enum))
	for _, v := range s.Enum {
		str, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("schema %q: non string enum value %v", name, v)
		}
		out = append(out, str)
	}
	sort.Strings(out)
	return out, nil
}

// ValidateValue validates v, a decoded JSON value, against the named
// component schema.
func ValidateValue(doc *openapi3.T, name string, v any) error {
	s, err := Component(doc, name)
	if err != nil {
		return err
	}
	return s.VisitJSON(v, openapi3.MultiErrors())
}

// ValidateJSON decodes data and validates it against the named component
// schema.
func ValidateJSON(doc *openapi3.T, name string, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return ValidateValue(doc, name, v)
}
