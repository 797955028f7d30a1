package validation

import (
	"log/slog"
	"reflect"
)

// ResponseFilter re-validates the request DTO after the handler ran and
// appends field errors to the outcome's response status. It never blocks
// or replaces the already-computed outcome.
type ResponseFilter struct {
	resolver Resolver
	log      *slog.Logger
}

// NewResponseFilter returns a post-handler filter backed by resolver.
func NewResponseFilter(resolver Resolver, log *slog.Logger) *ResponseFilter {
	if resolver == nil {
		panic("validation: nil resolver")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ResponseFilter{resolver: resolver, log: log}
}

// OnResponse appends validation errors for dto to outcome's status. It is a
// no-op unless outcome implements StatusCarrier and a validator resolves
// for dto. Only resolver and execution errors are returned; the filter's
// own logic never fails.
func (f *ResponseFilter) OnResponse(ctx Context, dto any, outcome any) error {
	carrier, ok := outcome.(StatusCarrier)
	if !ok || dto == nil {
		return nil
	}

	v := f.resolver.Resolve(ctx, reflect.TypeOf(dto))
	if v == nil {
		return nil
	}
	defer release(v)

	res, err := ExecContext(ctx, v, dto)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}

	status := carrier.ResponseStatus()
	if status == nil {
		status = &ResponseStatus{
			ErrorCode: res.Errors[0].Code,
			Message:   res.Errors[0].Message,
		}
	}
	for _, fe := range res.Errors {
		status.Errors = append(status.Errors, ResponseError{
			ErrorCode: fe.Code,
			FieldName: fe.Field,
			Message:   fe.Message,
			Meta:      map[string]string{MetaKeySeverity: fe.Severity.String()},
		})
	}
	carrier.SetResponseStatus(status)

	f.log.DebugContext(ctx, "validation errors appended to response status",
		slog.Int("errors", len(res.Errors)),
	)
	return nil
}
