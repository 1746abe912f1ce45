package entities

import "strings"

// ValidationError reports caller-supplied input that failed validation.
// Missing lists every absent required field, not just the first one found.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
