// Package schemas provides JSON Schema validation for resume documents.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResumeSchema describes the required top-level shape of a resume document.
//
//go:embed resume.schema.json
var ResumeSchema []byte

// RootField is the field path reported for errors on the document itself.
const RootField = "(root)"

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field    string
	Property string // set for "required" errors: the missing property
	Type     string
	Message  string
}

// Key returns the top-level document key the error refers to, or RootField.
func (fe FieldError) Key() string {
	if fe.Field != RootField && fe.Field != "" {
		key, _, _ := strings.Cut(fe.Field, ".")
		return key
	}
	if fe.Property != "" {
		return fe.Property
	}
	return RootField
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Keys returns the distinct top-level keys named by the errors, in error order.
func (ve *ValidationError) Keys() []string {
	seen := make(map[string]bool, len(ve.Errors))
	var keys []string
	for _, fe := range ve.Errors {
		k := fe.Key()
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

// ValidateResumeDocument validates JSON content against ResumeSchema.
func ValidateResumeDocument(jsonContent []byte) error {
	return ValidateJSONBytes(ResumeSchema, jsonContent)
}

// ValidateJSONBytes validates JSON content against schema content
func ValidateJSONBytes(schemaContent, jsonContent []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(embedded schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = RootField
		}
		fe := FieldError{
			Field:   field,
			Type:    desc.Type(),
			Message: desc.Description(),
		}
		if prop, ok := desc.Details()["property"].(string); ok {
			fe.Property = prop
		}
		validationErr.Errors = append(validationErr.Errors, fe)
	}

	return validationErr
}
