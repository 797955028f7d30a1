package validation

import (
	"context"
	"net/http"
)

// KeyAutoBatchIndex is the per-request item key holding the index of the
// current sub-request within a client-submitted batch. When present, the
// request filter copies it into the error response status metadata so the
// client can correlate which sub-request failed.
const KeyAutoBatchIndex = "AutoBatchIndex"

// MetaKeySeverity is the per-error metadata key carrying the severity's
// wire form in a ResponseStatus entry.
const MetaKeySeverity = "Severity"

// Context is the view of a request this package needs. The framework's
// handler context satisfies it; tests can supply a lighter implementation.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// ItemStore is an optional capability of a Context: a per-request
// key/value store. The request filter probes for it to read the batch
// index; it never writes to the store.
type ItemStore interface {
	Item(key string) (string, bool)
	SetItem(key, value string)
}
