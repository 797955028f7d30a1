package rules

import (
	"context"
	"strings"

	"github.com/valkit-go/valkit/validation"
)

// Numeric covers the built-in number kinds accepted by Range.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule is one declarative check against a DTO of type T.
type Rule[T any] struct {
	field    string
	code     string
	message  string
	severity validation.Severity
	sets     map[string]struct{}
	check    func(T) bool
	checkCtx func(context.Context, T) (bool, error)
}

// Option adjusts a rule's code, message, severity, or rule-set tags.
type Option func(*ruleMeta)

type ruleMeta struct {
	code     string
	message  string
	severity validation.Severity
	sets     []string
}

// InSet tags the rule with the HTTP verbs it applies to. Untagged rules
// apply to every request.
func InSet(verbs ...string) Option {
	return func(m *ruleMeta) { m.sets = append(m.sets, verbs...) }
}

// AsWarning downgrades the rule to SeverityWarning.
func AsWarning() Option {
	return func(m *ruleMeta) { m.severity = validation.SeverityWarning }
}

// AsInfo downgrades the rule to SeverityInfo.
func AsInfo() Option {
	return func(m *ruleMeta) { m.severity = validation.SeverityInfo }
}

// WithSeverity sets an explicit severity.
func WithSeverity(s validation.Severity) Option {
	return func(m *ruleMeta) { m.severity = s }
}

// WithCode overrides the rule's default error code.
func WithCode(code string) Option {
	return func(m *ruleMeta) { m.code = code }
}

// WithMessage overrides the rule's default message.
func WithMessage(message string) Option {
	return func(m *ruleMeta) { m.message = message }
}

// Field declares a synchronous rule: check returns false when the value is
// invalid.
func Field[T any](field, code, message string, check func(T) bool, opts ...Option) Rule[T] {
	meta := applyOptions(code, message, opts)
	return Rule[T]{
		field:    field,
		code:     meta.code,
		message:  meta.message,
		severity: meta.severity,
		sets:     setIndex(meta.sets),
		check:    check,
	}
}

// FieldContext declares a context rule performing blocking work. Its
// presence in the active rule set forces the asynchronous execution path.
// A returned error aborts evaluation and propagates to the caller.
func FieldContext[T any](field, code, message string, check func(context.Context, T) (bool, error), opts ...Option) Rule[T] {
	meta := applyOptions(code, message, opts)
	return Rule[T]{
		field:    field,
		code:     meta.code,
		message:  meta.message,
		severity: meta.severity,
		sets:     setIndex(meta.sets),
		checkCtx: check,
	}
}

func applyOptions(code, message string, opts []Option) ruleMeta {
	m := ruleMeta{code: code, message: message}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func setIndex(verbs []string) map[string]struct{} {
	if len(verbs) == 0 {
		return nil
	}
	idx := make(map[string]struct{}, len(verbs))
	for _, v := range verbs {
		idx[strings.ToUpper(v)] = struct{}{}
	}
	return idx
}

// appliesTo reports whether the rule belongs to the selected rule set.
func (r Rule[T]) appliesTo(ruleSet string) bool {
	if len(r.sets) == 0 {
		return true
	}
	_, ok := r.sets[ruleSet]
	return ok
}

func (r Rule[T]) fieldError() validation.FieldError {
	return validation.FieldError{
		Code:     r.code,
		Field:    r.field,
		Message:  r.message,
		Severity: r.severity,
	}
}
