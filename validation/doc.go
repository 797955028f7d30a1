// Package validation implements request and response validation interception
// for typed HTTP handlers.
//
// The package sits between request binding and the handler: a RequestFilter
// resolves a Validator for the bound request DTO, executes it, and blocks the
// request with a structured error response when validation fails. A companion
// ResponseFilter re-validates after the handler ran and appends field errors
// to the outcome's ResponseStatus without failing the request.
//
// Validators are opaque to this package. Any implementation of the Validator
// interface works; the rules package provides a declarative engine with
// per-verb rule sets, severities, and context-aware (async) rules.
//
// Severity policy:
//
//   - Strict filters block on any field error, regardless of severity.
//   - Lenient filters block only when at least one error has SeverityError;
//     results containing only Info/Warning entries let the handler proceed.
//
// Validator instances are request-scoped. When a resolved validator
// implements io.Closer it is released after each validation call, on every
// exit path. Close must tolerate being called more than once.
package validation
