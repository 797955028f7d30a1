package valkit

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/valkit-go/valkit/validation"
)

// WrapBatch converts a typed HandlerFunc into an http.HandlerFunc accepting
// a JSON array of request DTOs. Elements are processed in order through the
// full pipeline (binders, decorators, handler); each element sees its own
// position in the per-request item store under validation.KeyAutoBatchIndex,
// so a blocked sub-request's error response carries the index in its status
// metadata.
//
// Processing stops at the first sub-request that fails: its error response
// is written for the whole batch. When all elements succeed, the individual
// response bodies are returned as a JSON array.
func WrapBatch[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	inner := Wrap(h, opts...)

	return func(w http.ResponseWriter, r *http.Request) {
		var elements []json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&elements); err != nil {
			http.Error(w, "batch body must be a JSON array", http.StatusBadRequest)
			return
		}

		results := make([]json.RawMessage, 0, len(elements))
		for i, elem := range elements {
			sub := r.Clone(r.Context())
			sub.Body = io.NopCloser(bytes.NewReader(elem))
			sub.ContentLength = int64(len(elem))
			sub = WithItems(sub, map[string]string{
				validation.KeyAutoBatchIndex: strconv.Itoa(i),
			})

			rec := &bufferedWriter{header: make(http.Header)}
			inner(rec, sub)

			if rec.statusCode() >= http.StatusBadRequest {
				rec.copyTo(w)
				return
			}

			body := bytes.TrimSpace(rec.buf.Bytes())
			if len(body) == 0 {
				body = []byte("null")
			}
			results = append(results, json.RawMessage(body))
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(results)
	}
}

// bufferedWriter captures a sub-request's response so batch dispatch can
// decide whether to forward or aggregate it.
type bufferedWriter struct {
	header http.Header
	buf    bytes.Buffer
	code   int
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

func (b *bufferedWriter) WriteHeader(code int) {
	if b.code == 0 {
		b.code = code
	}
}

func (b *bufferedWriter) statusCode() int {
	if b.code == 0 {
		return http.StatusOK
	}
	return b.code
}

func (b *bufferedWriter) copyTo(w http.ResponseWriter) {
	for k, vals := range b.header {
		for _, v := range vals {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(b.statusCode())
	_, _ = w.Write(b.buf.Bytes())
}
