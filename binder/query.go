package binder

import "net/http"

// BindQuery creates a query parameter binder.
//
// Fields are matched via the `query` struct tag (or the lowercased field
// name when untagged); `query:"-"` skips a field. Supported kinds: string,
// signed/unsigned ints, floats, bool, pointers to those, and slices for
// multi-value parameters (repeated keys or comma-separated).
func BindQuery() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
