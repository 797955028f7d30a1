package rules

import (
	"context"
	"fmt"

	"github.com/valkit-go/valkit/validation"
)

// Engine evaluates the declared rules for one DTO type. It implements
// validation.Validator and is cheap to construct: the registry's factory
// can return a fresh Engine per request or share a single instance, since
// the engine holds no per-request state.
type Engine[T any] struct {
	rules []Rule[T]
}

// NewEngine builds an engine from rules, preserving declaration order.
func NewEngine[T any](rules ...Rule[T]) *Engine[T] {
	return &Engine[T]{rules: rules}
}

// HasAsyncRules reports whether the selected rule set contains context rules.
func (e *Engine[T]) HasAsyncRules(inv validation.Invocation) bool {
	for _, r := range e.rules {
		if r.checkCtx != nil && r.appliesTo(inv.RuleSet) {
			return true
		}
	}
	return false
}

// Validate evaluates synchronous rules only. It refuses to run when the
// selected rule set contains context rules, mirroring the executor's
// blocking-path contract.
func (e *Engine[T]) Validate(inv validation.Invocation) (validation.Result, error) {
	if e.HasAsyncRules(inv) {
		return validation.Result{}, validation.ErrAsyncNotSupported
	}

	dto, err := e.dto(inv)
	if err != nil {
		return validation.Result{}, err
	}

	var res validation.Result
	for _, r := range e.rules {
		if !r.appliesTo(inv.RuleSet) {
			continue
		}
		if !r.check(dto) {
			res.Errors = append(res.Errors, r.fieldError())
		}
	}
	return res, nil
}

// ValidateContext evaluates all applicable rules, checking ctx between
// rules so cancellation is observed at rule boundaries.
func (e *Engine[T]) ValidateContext(ctx context.Context, inv validation.Invocation) (validation.Result, error) {
	dto, err := e.dto(inv)
	if err != nil {
		return validation.Result{}, err
	}

	var res validation.Result
	for _, r := range e.rules {
		if !r.appliesTo(inv.RuleSet) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return validation.Result{}, err
		}

		if r.checkCtx != nil {
			ok, err := r.checkCtx(ctx, dto)
			if err != nil {
				return validation.Result{}, err
			}
			if !ok {
				res.Errors = append(res.Errors, r.fieldError())
			}
			continue
		}

		if !r.check(dto) {
			res.Errors = append(res.Errors, r.fieldError())
		}
	}
	return res, nil
}

func (e *Engine[T]) dto(inv validation.Invocation) (T, error) {
	switch v := inv.DTO.(type) {
	case T:
		return v, nil
	case *T:
		return *v, nil
	default:
		var zero T
		return zero, fmt.Errorf("rules: invocation dto is %T, engine expects %T", inv.DTO, zero)
	}
}
