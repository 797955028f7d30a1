package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Required validates that a string field is not empty after trimming
// whitespace. Default code "Required".
func Required[T any](field string, get func(T) string, opts ...Option) Rule[T] {
	return Field(field, "Required", "field is required", func(dto T) bool {
		return strings.TrimSpace(get(dto)) != ""
	}, opts...)
}

// MinLen validates that a string field is at least min bytes long.
// Default code "MinLen".
func MinLen[T any](field string, min int, get func(T) string, opts ...Option) Rule[T] {
	msg := fmt.Sprintf("must be at least %d characters long", min)
	return Field(field, "MinLen", msg, func(dto T) bool {
		return len(get(dto)) >= min
	}, opts...)
}

// MaxLen validates that a string field is at most max bytes long.
// Default code "MaxLen".
func MaxLen[T any](field string, max int, get func(T) string, opts ...Option) Rule[T] {
	msg := fmt.Sprintf("must be at most %d characters long", max)
	return Field(field, "MaxLen", msg, func(dto T) bool {
		return len(get(dto)) <= max
	}, opts...)
}

// Match validates a string field against a pattern. Empty values pass;
// combine with Required when the field is mandatory. Default code "Match".
func Match[T any](field string, re *regexp.Regexp, get func(T) string, opts ...Option) Rule[T] {
	msg := fmt.Sprintf("must match %s", re.String())
	return Field(field, "Match", msg, func(dto T) bool {
		v := get(dto)
		return v == "" || re.MatchString(v)
	}, opts...)
}
