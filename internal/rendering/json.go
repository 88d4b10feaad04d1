package rendering

import (
	"encoding/json"
	"io"

	"github.com/jonathan/resume-fetch/internal/resume"
)

// JSON writes the model as an indented resume document, keeping key order.
func JSON(w io.Writer, m *resume.Model) error {
	if m == nil {
		return &RenderError{Message: "nil resume model"}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return &RenderError{Message: "failed to encode JSON output", Cause: err}
	}
	return nil
}

// Formats supported by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Render writes m in the named format.
func Render(w io.Writer, m *resume.Model, format string) error {
	switch format {
	case "", FormatText:
		return Text(w, m)
	case FormatJSON:
		return JSON(w, m)
	default:
		return &RenderError{Message: "unsupported format " + format}
	}
}
