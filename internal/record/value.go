package record

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// Value is a decoded JSON value: string, json.Number, bool, nil,
// Fields for a nested object or []Value for an array.
type Value = any

// Field is a single named value.
type Field struct {
	Name  string
	Value Value
}

// Fields is an ordered mapping from name to value.
type Fields []Field

// Lookup returns the last value stored under name.
func (fs Fields) Lookup(name string) (Value, bool) {
	for i := len(fs) - 1; i >= 0; i-- {
		if fs[i].Name == name {
			return fs[i].Value, true
		}
	}
	return nil, false
}

// Names returns the field names in order.
func (fs Fields) Names() []string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
	}
	return names
}

// ParseObject decodes a JSON object into Fields, keeping document key order.
func ParseObject(data []byte) (Fields, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ConversionError{Message: "invalid JSON"}
	}
	return FromJSON(gjson.ParseBytes(data))
}

// FromJSON converts a parsed JSON object into Fields.
func FromJSON(obj gjson.Result) (Fields, error) {
	if !obj.IsObject() {
		return nil, &ConversionError{Message: "expected a JSON object, got " + obj.Type.String()}
	}
	return objectFields(obj), nil
}

func objectFields(obj gjson.Result) Fields {
	fields := Fields{}
	obj.ForEach(func(key, value gjson.Result) bool {
		fields = append(fields, Field{Name: key.String(), Value: convert(value)})
		return true
	})
	return fields
}

func convert(v gjson.Result) Value {
	switch {
	case v.IsObject():
		return objectFields(v)
	case v.IsArray():
		items := []Value{}
		v.ForEach(func(_, item gjson.Result) bool {
			items = append(items, convert(item))
			return true
		})
		return items
	}

	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		// Raw keeps the source text so 2019 stays 2019 rather than a float.
		return json.Number(strings.TrimSpace(v.Raw))
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		return nil
	}
}

// FormatValue renders a value as display text.
// Strings are returned verbatim and nil becomes the empty string.
// Arrays are joined with ", " and objects become "name: value" pairs.
func FormatValue(v Value) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	case []Value:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = FormatValue(item)
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(val, ", ")
	case Fields:
		parts := make([]string, len(val))
		for i, f := range val {
			parts[i] = f.Name + ": " + FormatValue(f.Value)
		}
		return strings.Join(parts, ", ")
	case *Record:
		return val.String()
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
