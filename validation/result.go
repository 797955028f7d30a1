package validation

import (
	"fmt"
	"strings"
)

// FieldError is a single validation finding for one request field.
type FieldError struct {
	// Code is a stable machine-readable identifier, e.g. "Required" or "MinLen".
	Code string
	// Field names the offending DTO field. Empty for whole-request errors.
	Field string
	// Message is the human-readable explanation.
	Message string
	// Severity decides whether this entry blocks the request.
	Severity Severity
}

// Result is the outcome of one validation call. It is immutable once
// returned by the executor; filters only read it.
type Result struct {
	Errors []FieldError
}

// Valid reports whether the result carries no errors of any severity.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// HasSeverity reports whether any entry carries the given severity.
func (r Result) HasSeverity(s Severity) bool {
	for _, e := range r.Errors {
		if e.Severity == s {
			return true
		}
	}
	return false
}

// Error is the failure synthesized from an invalid Result. The request
// filter feeds it through the host's exception-to-response hook so that
// validation failures and thrown errors share one translation path.
type Error struct {
	Result Result
}

func (e *Error) Error() string {
	if e == nil || e.Result.Valid() {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Result.Errors))
	for _, fe := range e.Result.Errors {
		if fe.Field == "" {
			parts = append(parts, fe.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
