package rules

import (
	"net/mail"
	"strings"
)

// Email validates that a string field parses as an RFC 5322 address with a
// dotted domain. Empty values pass; combine with Required when mandatory.
// Default code "Email".
func Email[T any](field string, get func(T) string, opts ...Option) Rule[T] {
	return Field(field, "Email", "must be a valid email address", func(dto T) bool {
		v := get(dto)
		if v == "" {
			return true
		}

		addr, err := mail.ParseAddress(v)
		if err != nil || addr.Address != v {
			return false
		}
		at := strings.LastIndex(v, "@")
		return strings.Contains(v[at+1:], ".")
	}, opts...)
}
