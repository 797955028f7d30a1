package orders

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/valkit-go/valkit"
)

// Service implements the order handlers.
type Service struct {
	store *Store
	log   *slog.Logger
}

// NewService wires the service to its store. A nil logger is replaced with
// a discard logger.
func NewService(store *Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{store: store, log: log}
}

// Create handles POST /orders.
func (s *Service) Create(ctx valkit.Context, req CreateOrderRequest) valkit.Response {
	o := s.store.Create(Order{
		CustomerEmail: req.CustomerEmail,
		Item:          req.Item,
		Quantity:      req.Quantity,
		Note:          req.Note,
	})
	s.log.InfoContext(ctx, "order created",
		slog.String("order_id", o.ID),
		slog.String("item", o.Item),
	)
	return valkit.JSON(toResponse(o), valkit.WithJSONStatus(http.StatusCreated))
}

// Update handles PUT /orders.
func (s *Service) Update(ctx valkit.Context, req UpdateOrderRequest) valkit.Response {
	o, ok := s.store.Update(req.ID, req.Quantity, req.Note)
	if !ok {
		return valkit.JSONError(valkit.ErrNotFound)
	}
	s.log.InfoContext(ctx, "order updated", slog.String("order_id", o.ID))
	return valkit.JSON(toResponse(o))
}

// List handles GET /orders.
func (s *Service) List(ctx valkit.Context, req ListOrdersRequest) valkit.Response {
	found := s.store.List(req.CustomerEmail)
	resp := &ListOrdersResponse{Orders: make([]OrderResponse, 0, len(found))}
	for _, o := range found {
		resp.Orders = append(resp.Orders, *toResponse(o))
	}
	return valkit.JSON(resp)
}

func toResponse(o Order) *OrderResponse {
	return &OrderResponse{
		ID:            o.ID,
		CustomerEmail: o.CustomerEmail,
		Item:          o.Item,
		Quantity:      o.Quantity,
		Note:          o.Note,
	}
}
