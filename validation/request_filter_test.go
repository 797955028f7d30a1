package validation_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valkit-go/valkit/validation"
)

// stubResolver returns the same validator for every type.
type stubResolver struct {
	v     validation.Validator
	calls int
}

func (r *stubResolver) Resolve(_ validation.Context, _ reflect.Type) validation.Validator {
	r.calls++
	return r.v
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func errorResult() validation.Result {
	return validation.Result{Errors: []validation.FieldError{
		{Code: "Required", Field: "Name", Message: "field is required"},
	}}
}

func warningResult() validation.Result {
	return validation.Result{Errors: []validation.FieldError{
		{Code: "MaxLen", Field: "Note", Message: "too long", Severity: validation.SeverityWarning},
		{Code: "Email", Field: "Contact", Message: "check the address", Severity: validation.SeverityInfo},
	}}
}

func TestNewRequestFilter(t *testing.T) {
	t.Parallel()

	t.Run("nil resolver panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { validation.NewRequestFilter(nil) })
		assert.Panics(t, func() { validation.NewStrictRequestFilter(nil) })
	})
}

func TestRequestFilterOnRequest(t *testing.T) {
	t.Parallel()

	t.Run("nil dto passes", func(t *testing.T) {
		t.Parallel()
		resolver := &stubResolver{v: &stubValidator{}}
		f := validation.NewRequestFilter(resolver, validation.WithLogger(discardLogger()))

		resp, err := f.OnRequest(newTestContext(http.MethodPost), nil)

		require.NoError(t, err)
		assert.Nil(t, resp)
		assert.Zero(t, resolver.calls, "nil dto must not reach the resolver")
	})

	t.Run("no validator registered passes", func(t *testing.T) {
		t.Parallel()
		f := validation.NewRequestFilter(&stubResolver{}, validation.WithLogger(discardLogger()))

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		assert.Nil(t, resp)
	})

	t.Run("valid result passes and releases validator", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{}
		f := validation.NewRequestFilter(&stubResolver{v: v}, validation.WithLogger(discardLogger()))

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		assert.Nil(t, resp)
		assert.GreaterOrEqual(t, v.closeCalls, 1)
	})

	t.Run("error severity blocks with a 400", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{res: errorResult()}
		f := validation.NewRequestFilter(&stubResolver{v: v}, validation.WithLogger(discardLogger()))

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.HTTPStatus())
		assert.Equal(t, "Required", resp.Status.ErrorCode)
		require.Len(t, resp.Status.Errors, 1)
		assert.Equal(t, "Error", resp.Status.Errors[0].Meta[validation.MetaKeySeverity])
	})

	t.Run("lenient filter passes warnings and infos", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{res: warningResult()}
		f := validation.NewRequestFilter(&stubResolver{v: v}, validation.WithLogger(discardLogger()))

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		assert.Nil(t, resp)
	})

	t.Run("strict filter blocks on warnings", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{res: warningResult()}
		f := validation.NewStrictRequestFilter(&stubResolver{v: v}, validation.WithLogger(discardLogger()))

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Len(t, resp.Status.Errors, 2)
		assert.Equal(t, "Warning", resp.Status.Errors[0].Meta[validation.MetaKeySeverity])
		assert.Equal(t, "Info", resp.Status.Errors[1].Meta[validation.MetaKeySeverity])
	})

	t.Run("lenient filter blocks mixed results with all entries", func(t *testing.T) {
		t.Parallel()
		mixed := validation.Result{Errors: append(warningResult().Errors, errorResult().Errors...)}
		v := &stubValidator{res: mixed}
		f := validation.NewRequestFilter(&stubResolver{v: v}, validation.WithLogger(discardLogger()))

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Len(t, resp.Status.Errors, 3, "blocked responses report every entry, not just blocking ones")
	})

	t.Run("cancellation returns the error and no response", func(t *testing.T) {
		t.Parallel()
		ctx := newTestContext(http.MethodPost)
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		ctx.Context = cancelled

		f := validation.NewRequestFilter(&stubResolver{v: &stubValidator{}}, validation.WithLogger(discardLogger()))
		resp, err := f.OnRequest(ctx, testDTO{})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, resp)
	})
}

func TestRequestFilterExceptions(t *testing.T) {
	t.Parallel()

	t.Run("execution error produces the default response", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{err: errors.New("store unavailable")}
		f := validation.NewRequestFilter(&stubResolver{v: v}, validation.WithLogger(discardLogger()))

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusInternalServerError, resp.HTTPStatus())
		assert.Equal(t, "InternalServerError", resp.Status.ErrorCode)
		assert.Equal(t, "store unavailable", resp.Status.Message)
	})

	t.Run("single-cause aggregates unwrap before translation", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{err: errors.Join(codedError{})}
		f := validation.NewRequestFilter(&stubResolver{v: v}, validation.WithLogger(discardLogger()))

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, "QuotaExceeded", resp.Status.ErrorCode)
		assert.Equal(t, http.StatusTooManyRequests, resp.HTTPStatus())
	})

	t.Run("multi-cause aggregates pass through intact", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{err: errors.Join(errors.New("first"), errors.New("second"))}
		f := validation.NewRequestFilter(&stubResolver{v: v}, validation.WithLogger(discardLogger()))

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, "InternalServerError", resp.Status.ErrorCode)
		assert.Contains(t, resp.Status.Message, "first")
		assert.Contains(t, resp.Status.Message, "second")
	})

	t.Run("exception handler translates the error", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{err: errors.New("store unavailable")}
		custom := &validation.ErrorResponse{Status: &validation.ResponseStatus{ErrorCode: "Custom"}}
		f := validation.NewRequestFilter(&stubResolver{v: v},
			validation.WithLogger(discardLogger()),
			validation.WithServiceExceptionHandler(func(_ validation.Context, _ any, _ error) *validation.ErrorResponse {
				return custom
			}),
		)

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		assert.Same(t, custom, resp)
	})

	t.Run("declining exception handler falls back to the default", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{err: errors.New("store unavailable")}
		f := validation.NewRequestFilter(&stubResolver{v: v},
			validation.WithLogger(discardLogger()),
			validation.WithServiceExceptionHandler(func(_ validation.Context, _ any, _ error) *validation.ErrorResponse {
				return nil
			}),
		)

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, "InternalServerError", resp.Status.ErrorCode)
	})

	t.Run("exception handler sees validation failures too", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{res: errorResult()}
		var seen error
		f := validation.NewRequestFilter(&stubResolver{v: v},
			validation.WithLogger(discardLogger()),
			validation.WithServiceExceptionHandler(func(_ validation.Context, _ any, err error) *validation.ErrorResponse {
				seen = err
				return nil
			}),
		)

		_, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		var verr *validation.Error
		assert.ErrorAs(t, seen, &verr)
	})

	t.Run("rewrite hook is skipped on the exception branch", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{err: errors.New("store unavailable")}
		rewrites := 0
		f := validation.NewRequestFilter(&stubResolver{v: v},
			validation.WithLogger(discardLogger()),
			validation.WithErrorResponseFilter(func(_ validation.Context, _ validation.Result, _ *validation.ErrorResponse) *validation.ErrorResponse {
				rewrites++
				return nil
			}),
		)

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Zero(t, rewrites)
	})
}

func TestRequestFilterRewrite(t *testing.T) {
	t.Parallel()

	t.Run("rewrite hook replaces the response", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{res: errorResult()}
		replaced := &validation.ErrorResponse{Status: &validation.ResponseStatus{ErrorCode: "Rewritten"}}
		f := validation.NewRequestFilter(&stubResolver{v: v},
			validation.WithLogger(discardLogger()),
			validation.WithErrorResponseFilter(func(_ validation.Context, res validation.Result, _ *validation.ErrorResponse) *validation.ErrorResponse {
				assert.False(t, res.Valid())
				return replaced
			}),
		)

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		assert.Same(t, replaced, resp)
	})

	t.Run("nil rewrite keeps the built response", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{res: errorResult()}
		f := validation.NewRequestFilter(&stubResolver{v: v},
			validation.WithLogger(discardLogger()),
			validation.WithErrorResponseFilter(func(_ validation.Context, _ validation.Result, _ *validation.ErrorResponse) *validation.ErrorResponse {
				return nil
			}),
		)

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, "Required", resp.Status.ErrorCode)
	})
}

func TestRequestFilterBatchIndex(t *testing.T) {
	t.Parallel()

	t.Run("stamps the batch index into status metadata", func(t *testing.T) {
		t.Parallel()
		ctx := newTestContext(http.MethodPost)
		ctx.SetItem(validation.KeyAutoBatchIndex, "3")

		v := &stubValidator{res: errorResult()}
		f := validation.NewRequestFilter(&stubResolver{v: v}, validation.WithLogger(discardLogger()))

		resp, err := f.OnRequest(ctx, testDTO{})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, "3", resp.Status.Meta[validation.KeyAutoBatchIndex])
	})

	t.Run("no item means no metadata", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{res: errorResult()}
		f := validation.NewRequestFilter(&stubResolver{v: v}, validation.WithLogger(discardLogger()))

		resp, err := f.OnRequest(newTestContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.NotContains(t, resp.Status.Meta, validation.KeyAutoBatchIndex)
	})

	t.Run("contexts without an item store are fine", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{res: errorResult()}
		f := validation.NewRequestFilter(&stubResolver{v: v}, validation.WithLogger(discardLogger()))

		resp, err := f.OnRequest(newPlainContext(http.MethodPost), testDTO{})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Empty(t, resp.Status.Meta)
	})
}
