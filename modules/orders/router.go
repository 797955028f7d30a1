package orders

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/valkit-go/valkit"
	"github.com/valkit-go/valkit/binder"
	"github.com/valkit-go/valkit/pkg/httpserver"
	"github.com/valkit-go/valkit/pkg/requestid"
	"github.com/valkit-go/valkit/validation"
)

// RouterOptions configures the orders module router.
type RouterOptions struct {
	Service *Service
	Feature *validation.Feature
	Log     *slog.Logger
}

// Router mounts the order endpoints with request and response validation.
//
// Example:
//
//	store := orders.NewStore()
//	feature, _ := validation.NewFeature()
//	orders.RegisterValidators(feature.Registry(), store)
//
//	r := chi.NewRouter()
//	r.Mount("/", orders.Router(orders.RouterOptions{
//	    Service: orders.NewService(store, log),
//	    Feature: feature,
//	    Log:     log,
//	}))
func Router(opts RouterOptions) chi.Router {
	reqFilter := opts.Feature.RequestFilter()
	respFilter := opts.Feature.ResponseFilter()

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/health", httpserver.HealthCheckHandler(opts.Log))

	r.Post("/orders", valkit.Wrap(opts.Service.Create,
		valkit.WithBinders[valkit.Context, CreateOrderRequest](binder.BindJSON()),
		valkit.WithDecorators(
			valkit.RequireValid[valkit.Context, CreateOrderRequest](reqFilter),
			valkit.AppendValidation[valkit.Context, CreateOrderRequest](respFilter),
		),
	))

	r.Post("/orders/batch", valkit.WrapBatch(opts.Service.Create,
		valkit.WithBinders[valkit.Context, CreateOrderRequest](binder.BindJSON()),
		valkit.WithDecorators(
			valkit.RequireValid[valkit.Context, CreateOrderRequest](reqFilter),
			valkit.AppendValidation[valkit.Context, CreateOrderRequest](respFilter),
		),
	))

	r.Put("/orders", valkit.Wrap(opts.Service.Update,
		valkit.WithBinders[valkit.Context, UpdateOrderRequest](binder.BindJSON()),
		valkit.WithDecorators(
			valkit.RequireValid[valkit.Context, UpdateOrderRequest](reqFilter),
			valkit.AppendValidation[valkit.Context, UpdateOrderRequest](respFilter),
		),
	))

	r.Get("/orders", valkit.Wrap(opts.Service.List,
		valkit.WithBinders[valkit.Context, ListOrdersRequest](binder.BindQuery()),
		valkit.WithDecorators(
			valkit.RequireValid[valkit.Context, ListOrdersRequest](reqFilter),
		),
	))

	return r
}
