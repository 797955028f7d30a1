package orders

import "github.com/valkit-go/valkit/validation"

// CreateOrderRequest is the POST /orders payload.
type CreateOrderRequest struct {
	CustomerEmail string `json:"customerEmail"`
	Item          string `json:"item"`
	Quantity      int    `json:"quantity"`
	Note          string `json:"note,omitempty"`
}

// UpdateOrderRequest is the PUT /orders payload.
type UpdateOrderRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

// ListOrdersRequest filters GET /orders by customer.
type ListOrdersRequest struct {
	CustomerEmail string `query:"customer_email"`
}

// OrderResponse is the outcome object for a single order. It carries a
// mutable response status so the post-handler validation filter can append
// findings without rebuilding the body.
type OrderResponse struct {
	ID            string                     `json:"id"`
	CustomerEmail string                     `json:"customerEmail"`
	Item          string                     `json:"item"`
	Quantity      int                        `json:"quantity"`
	Note          string                     `json:"note,omitempty"`
	Status        *validation.ResponseStatus `json:"responseStatus,omitempty"`
}

// ResponseStatus implements validation.StatusCarrier.
func (o *OrderResponse) ResponseStatus() *validation.ResponseStatus { return o.Status }

// SetResponseStatus implements validation.StatusCarrier.
func (o *OrderResponse) SetResponseStatus(s *validation.ResponseStatus) { o.Status = s }

// ListOrdersResponse is the outcome object for a customer's orders.
type ListOrdersResponse struct {
	Orders []OrderResponse            `json:"orders"`
	Status *validation.ResponseStatus `json:"responseStatus,omitempty"`
}

// ResponseStatus implements validation.StatusCarrier.
func (l *ListOrdersResponse) ResponseStatus() *validation.ResponseStatus { return l.Status }

// SetResponseStatus implements validation.StatusCarrier.
func (l *ListOrdersResponse) SetResponseStatus(s *validation.ResponseStatus) { l.Status = s }
