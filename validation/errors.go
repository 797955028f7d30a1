package validation

import "errors"

var (
	// ErrNilValidator indicates Exec/ExecContext was called without a validator.
	ErrNilValidator = errors.New("validation: nil validator")

	// ErrNilRequest indicates Exec/ExecContext was called without a request context.
	ErrNilRequest = errors.New("validation: nil request context")

	// ErrNilDTO indicates Exec/ExecContext was called without a request DTO.
	ErrNilDTO = errors.New("validation: nil request dto")

	// ErrAsyncNotSupported is returned by the blocking Exec when the active
	// rule set requires asynchronous evaluation. This is a programmer error:
	// switch the call site to ExecContext instead of catching it.
	ErrAsyncNotSupported = errors.New("validation: rule set requires async evaluation, use ExecContext")
)
