package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObject_KeepsDocumentOrder(t *testing.T) {
	fields, err := ParseObject([]byte(`{"zeta": 1, "alpha": "a", "mid": true}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, fields.Names())
}

func TestParseObject_ValueKinds(t *testing.T) {
	fields, err := ParseObject([]byte(`{
		"s": "text",
		"i": 2019,
		"f": 3.50,
		"t": true,
		"n": null,
		"arr": ["rust", "go"],
		"obj": {"y": 1, "x": [false]}
	}`))
	require.NoError(t, err)

	want := Fields{
		{Name: "s", Value: "text"},
		{Name: "i", Value: json.Number("2019")},
		{Name: "f", Value: json.Number("3.50")},
		{Name: "t", Value: true},
		{Name: "n", Value: nil},
		{Name: "arr", Value: []Value{"rust", "go"}},
		{Name: "obj", Value: Fields{
			{Name: "y", Value: json.Number("1")},
			{Name: "x", Value: []Value{false}},
		}},
	}
	assert.Equal(t, want, fields)
}

func TestParseObject_EmptyContainers(t *testing.T) {
	fields, err := ParseObject([]byte(`{"a": [], "b": {}}`))
	require.NoError(t, err)

	v, ok := fields.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, []Value{}, v)

	v, ok = fields.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, Fields{}, v)
}

func TestParseObject_EscapedKeys(t *testing.T) {
	fields, err := ParseObject([]byte(`{"a\"b": "é"}`))
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, `a"b`, fields[0].Name)
	assert.Equal(t, "é", fields[0].Value)
}

func TestParseObject_InvalidJSON(t *testing.T) {
	_, err := ParseObject([]byte(`{ invalid json }`))
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestParseObject_NotAnObject(t *testing.T) {
	_, err := ParseObject([]byte(`["a", "b"]`))
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Contains(t, err.Error(), "expected a JSON object")
}

func TestFieldsLookup_LastWins(t *testing.T) {
	fields := Fields{{Name: "a", Value: "1"}, {Name: "a", Value: "2"}}
	v, ok := fields.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = fields.Lookup("missing")
	assert.False(t, ok)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"nil", nil, ""},
		{"string", "Ada", "Ada"},
		{"number", json.Number("2019"), "2019"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"array", []Value{"rust", json.Number("1"), nil}, "rust, 1, "},
		{"strings", []string{"a", "b"}, "a, b"},
		{"object", Fields{{Name: "k", Value: "v"}, {Name: "n", Value: json.Number("2")}}, "k: v, n: 2"},
		{"int", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value))
		})
	}
}
