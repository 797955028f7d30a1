package valkit

import (
	"encoding/json"
	"net/http"

	"github.com/valkit-go/valkit/validation"
)

// errorResponseBody renders a validation.ErrorResponse with its HTTP status.
type errorResponseBody struct {
	resp *validation.ErrorResponse
}

func (e errorResponseBody) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.resp.HTTPStatus())
	return json.NewEncoder(w).Encode(e.resp)
}

// RequireValid returns a decorator running the given request validation
// filter before the handler. When the filter blocks, the error response is
// rendered and the handler never runs. When the request is cancelled during
// validation, nothing is written.
func RequireValid[C Context, R any](f *validation.RequestFilter) Decorator[C, R] {
	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		return func(ctx C, req R) Response {
			resp, err := f.OnRequest(ctx, req)
			if err != nil {
				// Cancellation: skip response writing entirely.
				return silentResponse{}
			}
			if resp != nil {
				return errorResponseBody{resp: resp}
			}
			return next(ctx, req)
		}
	}
}

// AppendValidation returns a decorator running the response validation
// filter after the handler. The handler's outcome is returned unchanged;
// when it carries a mutable response status, validation errors for the
// request DTO are appended to it before rendering.
func AppendValidation[C Context, R any](f *validation.ResponseFilter) Decorator[C, R] {
	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		return func(ctx C, req R) Response {
			resp := next(ctx, req)
			if f == nil || resp == nil {
				return resp
			}
			carrier, ok := resp.(PayloadCarrier)
			if !ok {
				return resp
			}
			if err := f.OnResponse(ctx, req, carrier.Payload()); err != nil {
				// The outcome is already computed; enrichment failures must
				// not abort it.
				return resp
			}
			return resp
		}
	}
}
