// Package resume builds a resume model from a parsed resume document.
package resume

import "fmt"

// MalformedResumeError is returned when a required top-level section is
// missing or has the wrong shape.
type MalformedResumeError struct {
	Key   string // the missing or invalid top-level key
	Cause error
}

func (e *MalformedResumeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed resume: missing or invalid %q: %v", e.Key, e.Cause)
	}
	return fmt.Sprintf("malformed resume: missing or invalid %q", e.Key)
}

func (e *MalformedResumeError) Unwrap() error {
	return e.Cause
}
