// Package rules provides a declarative validator engine for request DTOs.
//
// Rules are declared per DTO type and evaluated through the validation
// executor. Each rule carries an error code, a message, a severity, and an
// optional set of HTTP verbs it applies to; rules without verb tags apply
// to every request. Context rules (declared with FieldContext) perform
// blocking work such as uniqueness lookups and mark the engine as requiring
// asynchronous evaluation for the rule sets they belong to.
//
//	engine := rules.NewEngine(
//		rules.Required("Name", func(r CreateOrderRequest) string { return r.Name },
//			rules.InSet(http.MethodPost)),
//		rules.MaxLen("Name", 120, func(r CreateOrderRequest) string { return r.Name },
//			rules.AsWarning()),
//	)
package rules
