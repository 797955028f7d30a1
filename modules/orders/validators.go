package orders

import (
	"context"
	"net/http"

	"github.com/valkit-go/valkit/rules"
	"github.com/valkit-go/valkit/validation"
)

// RegisterValidators binds the order DTO validators to the registry. The
// blocklist check is a context rule, so POST requests take the asynchronous
// validation path while PUT and GET stay synchronous.
func RegisterValidators(reg *validation.Registry, store *Store) {
	validation.Register[CreateOrderRequest](reg, func() validation.Validator {
		return rules.NewEngine(
			rules.Required("CustomerEmail", func(r CreateOrderRequest) string { return r.CustomerEmail }),
			rules.Email("CustomerEmail", func(r CreateOrderRequest) string { return r.CustomerEmail }),
			rules.Required("Item", func(r CreateOrderRequest) string { return r.Item }),
			rules.Range("Quantity", 1, 1000, func(r CreateOrderRequest) int { return r.Quantity }),
			rules.MaxLen("Note", 500, func(r CreateOrderRequest) string { return r.Note },
				rules.AsWarning()),
			rules.FieldContext("CustomerEmail", "CustomerBlocked", "customer is blocked from ordering",
				func(ctx context.Context, r CreateOrderRequest) (bool, error) {
					blocked, err := store.IsBlocked(ctx, r.CustomerEmail)
					return !blocked, err
				},
				rules.InSet(http.MethodPost)),
		)
	})

	validation.Register[UpdateOrderRequest](reg, func() validation.Validator {
		return rules.NewEngine(
			rules.Required("ID", func(r UpdateOrderRequest) string { return r.ID },
				rules.InSet(http.MethodPut)),
			rules.Range("Quantity", 1, 1000, func(r UpdateOrderRequest) int { return r.Quantity }),
			rules.MaxLen("Note", 500, func(r UpdateOrderRequest) string { return r.Note },
				rules.AsWarning()),
		)
	})

	validation.Register[ListOrdersRequest](reg, func() validation.Validator {
		return rules.NewEngine(
			rules.Email("CustomerEmail", func(r ListOrdersRequest) string { return r.CustomerEmail },
				rules.AsInfo()),
		)
	})
}
