package binder

import "errors"

// Common binding errors.
var (
	// ErrBinderNotApplicable signals that a binder does not apply to the
	// current request (e.g. JSON binder on a GET without a body). The
	// pipeline skips the binder instead of failing the request.
	ErrBinderNotApplicable = errors.New("binder not applicable")

	ErrInvalidJSON  = errors.New("invalid JSON")
	ErrInvalidQuery = errors.New("invalid query parameter")
)
