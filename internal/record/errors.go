// Package record provides ordered, name-checked records built from JSON objects.
package record

import "fmt"

// FieldCollisionError is returned when a field name matches a reserved record operation
type FieldCollisionError struct {
	FieldName string
}

func (e *FieldCollisionError) Error() string {
	return fmt.Sprintf("field collision: key %q matches an existing record operation", e.FieldName)
}

// UnknownFieldError is returned when a field was not present at construction
type UnknownFieldError struct {
	FieldName string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field: %q", e.FieldName)
}

// ConversionError represents a failure converting JSON into record fields
type ConversionError struct {
	Message string
	Cause   error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("conversion error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("conversion error: %s", e.Message)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}
