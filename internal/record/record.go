// Package record provides ordered, name-checked records built from JSON objects.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
)

// ReservedNames lists the operation names a field may not use. It covers the
// record operations by their conventional names as well as every exported
// method of *Record. Matching is case-sensitive.
var ReservedNames = map[string]struct{}{
	"construct":   {},
	"get":         {},
	"set":         {},
	"fieldNames":  {},
	"fieldValues": {},
	"printAll":    {},
	"New":         {},
	"Get":         {},
	"Set":         {},
	"Has":         {},
	"Len":         {},
	"FieldNames":  {},
	"FieldValues": {},
	"Fields":      {},
	"PrintAll":    {},
	"PrintAllTo":  {},
	"MarshalJSON": {},
	"String":      {},
}

// IsReserved reports whether name collides with a record operation.
func IsReserved(name string) bool {
	_, ok := ReservedNames[name]
	return ok
}

// Record is an ordered set of named values fixed at construction.
// Only values of existing fields may be replaced afterwards.
type Record struct {
	names  []string
	values map[string]Value
	out    io.Writer
}

// Option configures a Record.
type Option func(*Record)

// WithOutput sets the sink used by PrintAll. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Record) {
		r.out = w
	}
}

// New builds a Record from fields in their given order.
// If any name is reserved, no record is returned and the error is a *FieldCollisionError.
// A repeated name keeps its first position and takes the later value.
func New(fields Fields, opts ...Option) (*Record, error) {
	for _, f := range fields {
		if IsReserved(f.Name) {
			return nil, &FieldCollisionError{FieldName: f.Name}
		}
	}

	r := &Record{
		names:  make([]string, 0, len(fields)),
		values: make(map[string]Value, len(fields)),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, f := range fields {
		if _, seen := r.values[f.Name]; !seen {
			r.names = append(r.names, f.Name)
		}
		r.values[f.Name] = f.Value
	}

	return r, nil
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (Value, error) {
	v, ok := r.values[name]
	if !ok {
		return nil, &UnknownFieldError{FieldName: name}
	}
	return v, nil
}

// Set replaces the value of an existing field. Setting a name that was not
// present at construction fails with *UnknownFieldError and changes nothing.
func (r *Record) Set(name string, value Value) error {
	if _, ok := r.values[name]; !ok {
		return &UnknownFieldError{FieldName: name}
	}
	r.values[name] = value
	return nil
}

// Has reports whether name is a field of the record.
func (r *Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.names)
}

// FieldNames returns the field names in insertion order.
func (r *Record) FieldNames() []string {
	return slices.Clone(r.names)
}

// FieldValues returns the field values in the same order as FieldNames.
func (r *Record) FieldValues() []Value {
	values := make([]Value, len(r.names))
	for i, name := range r.names {
		values[i] = r.values[name]
	}
	return values
}

// Fields returns the record contents as an ordered mapping.
func (r *Record) Fields() Fields {
	fields := make(Fields, len(r.names))
	for i, name := range r.names {
		fields[i] = Field{Name: name, Value: r.values[name]}
	}
	return fields
}

// PrintAll writes every value, in field order, one per line to the record's output.
func (r *Record) PrintAll() {
	_ = r.PrintAllTo(r.out)
}

// PrintAllTo is PrintAll with an explicit writer and error reporting.
func (r *Record) PrintAllTo(w io.Writer) error {
	for _, name := range r.names {
		if _, err := fmt.Fprintln(w, FormatValue(r.values[name])); err != nil {
			return err
		}
	}
	return nil
}

// String renders the record as name: value pairs.
func (r *Record) String() string {
	return FormatValue(r.Fields())
}

// MarshalJSON encodes the record as a JSON object preserving field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	return r.Fields().MarshalJSON()
}

// MarshalJSON encodes the fields as a JSON object preserving their order.
func (fs Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %q: %w", f.Name, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
