package validation

import (
	"context"
	"net/http"
	"strings"
)

// Invocation scopes one validation call to a DTO and the rule set
// selected for the current request.
type Invocation struct {
	// DTO is the request object under validation.
	DTO any
	// RuleSet selects the subset of rules to evaluate, derived from the
	// HTTP verb. Rules without a rule-set tag apply to every invocation.
	RuleSet string
}

// Validator evaluates one DTO type. Implementations are request-scoped:
// the executor acquires an instance, runs a single invocation, and
// releases it (via io.Closer, when implemented) before returning.
//
// Close, when implemented, must tolerate repeated calls: both the
// executor and the enclosing filter guarantee release on their own exit
// paths.
type Validator interface {
	// HasAsyncRules reports whether evaluating inv requires rules that
	// block on I/O. When true, only ValidateContext may be used.
	HasAsyncRules(inv Invocation) bool

	// Validate evaluates synchronous rules only. Callers must check
	// HasAsyncRules first; the executor enforces this.
	Validate(inv Invocation) (Result, error)

	// ValidateContext evaluates all applicable rules, honoring ctx
	// cancellation at rule boundaries.
	ValidateContext(ctx context.Context, inv Invocation) (Result, error)
}

// RuleSetFromMethod derives the rule-set selector from an HTTP verb.
// POST, PUT, PATCH, DELETE and GET each select their own subset.
func RuleSetFromMethod(method string) string {
	if method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(method)
}
