package validation

import "io"

// Exec runs the blocking validation path. It fails with ErrAsyncNotSupported
// before evaluating anything when the rule set selected for this request
// contains async rules; strictly synchronous callers must never silently run
// partial validation.
//
// The validator is released before Exec returns, on every exit path.
func Exec(ctx Context, v Validator, dto any) (Result, error) {
	if err := checkArgs(ctx, v, dto); err != nil {
		return Result{}, err
	}
	defer release(v)

	inv := Invocation{DTO: dto, RuleSet: RuleSetFromMethod(ctx.Request().Method)}
	if v.HasAsyncRules(inv) {
		return Result{}, ErrAsyncNotSupported
	}
	return v.Validate(inv)
}

// ExecContext runs the suspending validation path. It dispatches to the
// cheaper synchronous evaluation when no async rule applies to the selected
// rule set.
//
// Cancellation of ctx propagates out of the call; the validator is released
// regardless of outcome.
func ExecContext(ctx Context, v Validator, dto any) (Result, error) {
	if err := checkArgs(ctx, v, dto); err != nil {
		return Result{}, err
	}
	defer release(v)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	inv := Invocation{DTO: dto, RuleSet: RuleSetFromMethod(ctx.Request().Method)}
	if v.HasAsyncRules(inv) {
		return v.ValidateContext(ctx, inv)
	}
	return v.Validate(inv)
}

func checkArgs(ctx Context, v Validator, dto any) error {
	switch {
	case v == nil:
		return ErrNilValidator
	case ctx == nil:
		return ErrNilRequest
	case dto == nil:
		return ErrNilDTO
	}
	return nil
}

// release disposes a request-scoped validator. Close errors are ignored:
// disposal must never mask a validation outcome.
func release(v Validator) {
	if c, ok := v.(io.Closer); ok {
		_ = c.Close()
	}
}
