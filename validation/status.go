package validation

import (
	"context"
	"errors"
	"net/http"
)

// ResponseError is one field-level entry in a ResponseStatus.
type ResponseError struct {
	ErrorCode string            `json:"errorCode"`
	FieldName string            `json:"fieldName,omitempty"`
	Message   string            `json:"message"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// ResponseStatus is the error block of a response body. The request filter
// writes a fresh one per blocked request; the response filter appends to an
// existing one.
type ResponseStatus struct {
	ErrorCode string            `json:"errorCode"`
	Message   string            `json:"message"`
	Errors    []ResponseError   `json:"errors,omitempty"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// StatusCarrier is implemented by outcome objects that expose a mutable
// response status. The response filter is a no-op for outcomes without it.
type StatusCarrier interface {
	ResponseStatus() *ResponseStatus
	SetResponseStatus(*ResponseStatus)
}

// ErrorResponse is the transient, per-request error body written when a
// request is blocked. Never shared or reused across requests.
type ErrorResponse struct {
	Status *ResponseStatus `json:"responseStatus"`

	code int
}

// HTTPStatus returns the HTTP status code the response should be written
// with. Defaults to 500 when unset.
func (e *ErrorResponse) HTTPStatus() int {
	if e.code == 0 {
		return http.StatusInternalServerError
	}
	return e.code
}

// SetHTTPStatus overrides the HTTP status code, e.g. from a rewrite hook.
func (e *ErrorResponse) SetHTTPStatus(code int) {
	e.code = code
}

// StatusFromResult builds a ResponseStatus from an invalid result. The
// top-level code and message come from the first error; every entry keeps
// its severity in metadata.
func StatusFromResult(res Result) *ResponseStatus {
	status := &ResponseStatus{}
	if len(res.Errors) > 0 {
		status.ErrorCode = res.Errors[0].Code
		status.Message = res.Errors[0].Message
	}
	for _, fe := range res.Errors {
		status.Errors = append(status.Errors, ResponseError{
			ErrorCode: fe.Code,
			FieldName: fe.Field,
			Message:   fe.Message,
			Meta:      map[string]string{MetaKeySeverity: fe.Severity.String()},
		})
	}
	return status
}

// NewErrorResponse is the default error-response builder. Validation
// failures produce a field-indexed 400; anything else produces the generic
// shape for execution errors. Errors may customize the outcome by
// implementing ErrorCode() string and/or HTTPStatus() int.
func NewErrorResponse(err error) *ErrorResponse {
	var verr *Error
	if errors.As(err, &verr) {
		return &ErrorResponse{Status: StatusFromResult(verr.Result), code: http.StatusBadRequest}
	}

	resp := &ErrorResponse{
		Status: &ResponseStatus{ErrorCode: errorCodeOf(err), Message: errorMessageOf(err)},
		code:   http.StatusInternalServerError,
	}
	if sc, ok := err.(interface{ HTTPStatus() int }); ok {
		resp.code = sc.HTTPStatus()
	}
	return resp
}

func errorCodeOf(err error) string {
	if ec, ok := err.(interface{ ErrorCode() string }); ok {
		return ec.ErrorCode()
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "Timeout"
	case errors.Is(err, context.Canceled):
		return "Cancelled"
	default:
		return "InternalServerError"
	}
}

func errorMessageOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
