package validation

import (
	"reflect"
	"sync"
)

// Resolver yields a validator for a DTO type, or nil when none is
// registered. Resolution must be idempotent within a request: resolving
// twice for the same type yields equivalent validators. Returned instances
// are request-scoped and never shared across concurrent requests.
type Resolver interface {
	Resolve(ctx Context, typ reflect.Type) Validator
}

// Registry is the default Resolver: a type-to-factory map. Factories run
// per resolution so each request gets its own validator instance.
type Registry struct {
	mu        sync.RWMutex
	factories map[reflect.Type]func() Validator
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[reflect.Type]func() Validator)}
}

// Register binds a validator factory to the DTO type T.
func Register[T any](r *Registry, factory func() Validator) {
	r.RegisterType(reflect.TypeOf((*T)(nil)).Elem(), factory)
}

// RegisterType binds a validator factory to typ. Pointer types are
// normalized to their element type.
func (r *Registry) RegisterType(typ reflect.Type, factory func() Validator) {
	if typ == nil || factory == nil {
		return
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[typ] = factory
}

// Resolve implements Resolver.
func (r *Registry) Resolve(_ Context, typ reflect.Type) Validator {
	if typ == nil {
		return nil
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	r.mu.RLock()
	factory, ok := r.factories[typ]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	return factory()
}
