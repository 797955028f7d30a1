package valkit

import (
	"context"
	"net/http"
	"time"
)

// Context wraps http.Request and http.ResponseWriter with context.Context
// and a per-request item store used for cross-cutting metadata such as
// batch-index correlation.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter

	// Item reads a per-request item set earlier in the pipeline.
	Item(key string) (string, bool)
	// SetItem stores a per-request item. Items never outlive the request.
	SetItem(key, value string)
}

// itemsSeedKey carries pre-populated items through the request context,
// letting outer layers (e.g. batch dispatch) seed the store before the
// handler context exists.
type itemsSeedKey struct{}

// WithItems returns a request whose handler context will start with the
// given items.
func WithItems(r *http.Request, items map[string]string) *http.Request {
	if len(items) == 0 {
		return r
	}
	return r.WithContext(context.WithValue(r.Context(), itemsSeedKey{}, items))
}

// NewContext creates the default Context for one request.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	ctx := &httpContext{w: w, r: r}
	if seed, ok := r.Context().Value(itemsSeedKey{}).(map[string]string); ok {
		ctx.items = make(map[string]string, len(seed))
		for k, v := range seed {
			ctx.items[k] = v
		}
	}
	return ctx
}

type httpContext struct {
	w     http.ResponseWriter
	r     *http.Request
	items map[string]string
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

func (c *httpContext) Item(key string) (string, bool) {
	v, ok := c.items[key]
	return v, ok
}

func (c *httpContext) SetItem(key, value string) {
	if c.items == nil {
		c.items = make(map[string]string)
	}
	c.items[key] = value
}

// Delegate context.Context methods to the request's context.
func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}

// ContextKey provides type-safe context keys to prevent key collisions.
type ContextKey struct{ name string }

// String returns the key name for debugging.
func (c *ContextKey) String() string {
	return c.name
}

// NewContextKey creates a new context key. The name should be unique within
// the application.
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name}
}

// ContextValue retrieves a typed value from the context, or the zero value
// of T when the key is missing or holds a different type.
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}

// ContextValueOK retrieves a typed value from the context with an ok bool,
// distinguishing a missing key from a stored zero value.
func ContextValueOK[T any](ctx context.Context, key any) (T, bool) {
	val, ok := ctx.Value(key).(T)
	return val, ok
}
