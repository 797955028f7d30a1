// Package valkit provides a minimal, type-safe HTTP handler pipeline with
// pluggable request/response validation interception.
//
// Handlers are typed over their context and request DTO. Request data is
// bound by composable binders. Validation decorators run the resolved
// validator for the DTO before the handler executes, blocking the request
// with a structured error response on failure, and can re-validate after
// handling to enrich the outcome's response status.
//
// Basic usage:
//
//	feature, _ := validation.NewFeature()
//	validation.Register[CreateUserRequest](feature.Registry(), newUserValidator)
//
//	h := valkit.HandlerFunc[valkit.Context, CreateUserRequest](
//		func(ctx valkit.Context, req CreateUserRequest) valkit.Response {
//			user := createUser(req.Name, req.Email)
//			return valkit.JSON(user)
//		},
//	)
//
//	http.Handle("/users", valkit.Wrap(h,
//		valkit.WithBinders[valkit.Context, CreateUserRequest](binder.BindJSON()),
//		valkit.WithDecorators(valkit.RequireValid[valkit.Context, CreateUserRequest](feature.RequestFilter())),
//	))
//
// The pipeline is router-agnostic: Wrap returns a plain http.HandlerFunc.
package valkit
