package valkit

import (
	"encoding/json"
	"errors"
	"net/http"
)

// JSONResponse is the standard JSON response body.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information for non-validation failures.
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// PayloadCarrier is implemented by responses that expose their data object
// before serialization. The response validation decorator probes for it to
// enrich outcome objects in place.
type PayloadCarrier interface {
	Payload() any
}

// jsonResponse implements Response for JSON rendering.
type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// Payload implements PayloadCarrier.
func (j jsonResponse) Payload() any {
	return j.body.Data
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets a custom HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to the response.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON creates a JSON response wrapping v as the data payload.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   JSONResponse{Data: v},
	}
	for _, opt := range opts {
		opt(r)
	}
	return *r
}

// JSONError creates a JSON error response from an error. HTTPError values
// keep their status code and key; everything else renders as a 500.
func JSONError(err error) Response {
	status := http.StatusInternalServerError
	detail := &ErrorDetail{Code: "internal_error", Message: err.Error()}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		detail.Code = httpErr.Key
		detail.Message = http.StatusText(httpErr.Code)
	}

	return jsonResponse{
		status: status,
		body:   JSONResponse{Error: detail},
	}
}
