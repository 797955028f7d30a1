package validation

import (
	"log/slog"
	"reflect"
)

// ServiceExceptionHandler lets the host translate a failure into its own
// error response shape before the default builder runs. Returning nil
// declines, falling through to NewErrorResponse.
type ServiceExceptionHandler func(ctx Context, dto any, err error) *ErrorResponse

// ErrorResponseFilter is the plugin rewrite hook: it may transform the
// constructed error response before it is written. Returning nil keeps the
// response unchanged.
type ErrorResponseFilter func(ctx Context, res Result, resp *ErrorResponse) *ErrorResponse

// RequestFilter validates the bound request DTO before the handler runs and
// blocks the request when validation fails.
type RequestFilter struct {
	resolver    Resolver
	strict      bool
	onException ServiceExceptionHandler
	rewrite     ErrorResponseFilter
	log         *slog.Logger
}

// RequestFilterOption configures a RequestFilter.
type RequestFilterOption func(*RequestFilter)

// WithServiceExceptionHandler installs the host's exception-to-response hook.
func WithServiceExceptionHandler(h ServiceExceptionHandler) RequestFilterOption {
	return func(f *RequestFilter) { f.onException = h }
}

// WithErrorResponseFilter installs the plugin rewrite hook.
func WithErrorResponseFilter(h ErrorResponseFilter) RequestFilterOption {
	return func(f *RequestFilter) { f.rewrite = h }
}

// WithLogger sets the logger for blocked requests and execution errors.
func WithLogger(log *slog.Logger) RequestFilterOption {
	return func(f *RequestFilter) {
		if log != nil {
			f.log = log
		}
	}
}

// NewStrictRequestFilter returns the strict entry point: any field error,
// regardless of severity, blocks the request.
func NewStrictRequestFilter(resolver Resolver, opts ...RequestFilterOption) *RequestFilter {
	return newRequestFilter(resolver, true, opts)
}

// NewRequestFilter returns the lenient entry point: only errors with
// SeverityError block; results carrying nothing but Info/Warning entries
// let the handler proceed.
func NewRequestFilter(resolver Resolver, opts ...RequestFilterOption) *RequestFilter {
	return newRequestFilter(resolver, false, opts)
}

func newRequestFilter(resolver Resolver, strict bool, opts []RequestFilterOption) *RequestFilter {
	if resolver == nil {
		panic("validation: nil resolver")
	}
	f := &RequestFilter{
		resolver: resolver,
		strict:   strict,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// OnRequest validates dto for the current request.
//
// A (nil, nil) return means the request passed and the handler must run.
// A non-nil *ErrorResponse means the request is blocked: the caller writes
// it and must not invoke the handler. A non-nil error is only returned for
// request cancellation, in which case no response may be written.
func (f *RequestFilter) OnRequest(ctx Context, dto any) (*ErrorResponse, error) {
	if dto == nil {
		return nil, nil
	}

	v := f.resolver.Resolve(ctx, reflect.TypeOf(dto))
	if v == nil {
		return nil, nil
	}
	// The executor releases v on its own exit paths; this covers the window
	// before and after. Close is idempotent by the Validator contract.
	defer release(v)

	res, err := ExecContext(ctx, v, dto)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return f.exceptionResponse(ctx, dto, err), nil
	}

	if res.Valid() {
		return nil, nil
	}
	if !f.strict && !res.HasSeverity(SeverityError) {
		return nil, nil
	}

	verr := &Error{Result: res}
	resp := f.buildResponse(ctx, dto, verr)
	f.stampBatchIndex(ctx, resp)
	if f.rewrite != nil {
		if rewritten := f.rewrite(ctx, res, resp); rewritten != nil {
			resp = rewritten
		}
	}

	f.log.WarnContext(ctx, "request blocked by validation",
		slog.String("dto", reflect.TypeOf(dto).String()),
		slog.Int("errors", len(res.Errors)),
	)
	return resp, nil
}

// exceptionResponse handles the thrown-error branch: no severity policy,
// no batch stamping, no rewrite hook.
func (f *RequestFilter) exceptionResponse(ctx Context, dto any, err error) *ErrorResponse {
	err = unwrapSingle(err)
	resp := f.buildResponse(ctx, dto, err)

	f.log.ErrorContext(ctx, "validation execution failed",
		slog.String("dto", reflect.TypeOf(dto).String()),
		slog.Any("error", err),
	)
	return resp
}

func (f *RequestFilter) buildResponse(ctx Context, dto any, err error) *ErrorResponse {
	if f.onException != nil {
		if resp := f.onException(ctx, dto, err); resp != nil {
			return resp
		}
	}
	return NewErrorResponse(err)
}

// stampBatchIndex copies the batch-index item, when present, into the
// response status metadata so batched sub-requests stay correlatable.
func (f *RequestFilter) stampBatchIndex(ctx Context, resp *ErrorResponse) {
	store, ok := ctx.(ItemStore)
	if !ok || resp == nil || resp.Status == nil {
		return
	}
	idx, ok := store.Item(KeyAutoBatchIndex)
	if !ok || idx == "" {
		return
	}
	if resp.Status.Meta == nil {
		resp.Status.Meta = make(map[string]string)
	}
	resp.Status.Meta[KeyAutoBatchIndex] = idx
}

// unwrapSingle reduces single-cause aggregate errors (errors.Join with one
// element) to their inner cause. Multi-cause aggregates pass through.
func unwrapSingle(err error) error {
	for {
		joined, ok := err.(interface{ Unwrap() []error })
		if !ok {
			return err
		}
		inner := joined.Unwrap()
		if len(inner) != 1 {
			return err
		}
		err = inner[0]
	}
}
