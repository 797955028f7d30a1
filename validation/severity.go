package validation

// Severity classifies a field error. It decides whether the error blocks
// request handling under the active filter policy.
type Severity int

const (
	// SeverityError blocks the request under both strict and lenient policies.
	// It is the zero value: rules that do not set a severity are errors.
	SeverityError Severity = iota
	// SeverityWarning blocks only under the strict policy.
	SeverityWarning
	// SeverityInfo blocks only under the strict policy.
	SeverityInfo
)

// String returns the wire form of the severity, as stamped into
// per-error metadata under the "Severity" key.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "Warning"
	case SeverityInfo:
		return "Info"
	default:
		return "Error"
	}
}

// ParseSeverity converts the wire form back to a Severity.
// Unknown values map to SeverityError.
func ParseSeverity(s string) Severity {
	switch s {
	case "Warning":
		return SeverityWarning
	case "Info":
		return SeverityInfo
	default:
		return SeverityError
	}
}
