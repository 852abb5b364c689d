package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema validates values against an OpenAPI schema object.
type Schema struct {
	messageLog
	Schema *openapi3.Schema
}

// NewSchema is the Factory for KindSchema. Options: schema, given as an
// *openapi3.Schema, a decoded document (map[string]any) or raw JSON.
func NewSchema(options Options) (Validator, error) {
	raw, ok := options["schema"]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%w: schema requires a schema document", ErrInvalidOptions)
	}

	var data []byte
	switch t := raw.(type) {
	case *openapi3.Schema:
		return &Schema{Schema: t}, nil
	case string:
		data = []byte(t)
	case []byte:
		data = t
	case map[string]any:
		encoded, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("%w: schema document: %w", ErrInvalidOptions, err)
		}
		data = encoded
	default:
		return nil, fmt.Errorf("%w: schema has unsupported type %T", ErrInvalidOptions, raw)
	}

	schema := openapi3.NewSchema()
	if err := schema.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("%w: schema document: %w", ErrInvalidOptions, err)
	}
	return &Schema{Schema: schema}, nil
}

// IsValid implements Validator. Every schema violation becomes one message.
func (v *Schema) IsValid(value any) bool {
	v.reset()
	normalized, err := normalizeJSON(value)
	if err != nil {
		return v.fail("Value cannot be represented as JSON: %v", err)
	}
	err = v.Schema.VisitJSON(normalized, openapi3.MultiErrors())
	if err == nil {
		return true
	}
	for _, issue := range flattenSchemaErrors(err) {
		v.fail("%s", issue)
	}
	return false
}

// normalizeJSON converts value into the shapes produced by encoding/json so
// numbers, slices and maps match what the schema visitor expects.
func normalizeJSON(value any) (any, error) {
	switch value.(type) {
	case nil, string, bool, float64:
		return value, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenSchemaErrors(err error) []string {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var out []string
		for _, item := range multi {
			out = append(out, flattenSchemaErrors(item)...)
		}
		return out
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		reason := strings.TrimSpace(schemaErr.Reason)
		if reason == "" {
			reason = strings.TrimSpace(schemaErr.Error())
		}
		if field := strings.Join(schemaErr.JSONPointer(), "."); field != "" {
			return []string{field + ": " + reason}
		}
		return []string{reason}
	}
	return []string{strings.TrimSpace(err.Error())}
}
