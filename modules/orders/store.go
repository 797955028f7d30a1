package orders

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Order is the stored record.
type Order struct {
	ID            string
	CustomerEmail string
	Item          string
	Quantity      int
	Note          string
	CreatedAt     time.Time
}

// Store is an in-memory order repository. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	orders  map[string]Order
	blocked map[string]struct{}
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		orders:  make(map[string]Order),
		blocked: make(map[string]struct{}),
	}
}

// Create persists a new order and returns it with an assigned ID.
func (s *Store) Create(o Order) Order {
	o.ID = uuid.New().String()
	o.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
	return o
}

// Get returns the order with the given ID.
func (s *Store) Get(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	return o, ok
}

// Update replaces the mutable fields of an existing order.
func (s *Store) Update(id string, quantity int, note string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return Order{}, false
	}
	o.Quantity = quantity
	if note != "" {
		o.Note = note
	}
	s.orders[id] = o
	return o, true
}

// List returns the customer's orders, or all orders when email is empty.
func (s *Store) List(email string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		if email == "" || o.CustomerEmail == email {
			out = append(out, o)
		}
	}
	return out
}

// Block puts a customer on the order blocklist.
func (s *Store) Block(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocked[email] = struct{}{}
}

// IsBlocked reports whether the customer is on the blocklist. It checks ctx
// so a cancelled request stops the lookup; a real implementation would query
// an external service here.
func (s *Store) IsBlocked(ctx context.Context, email string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blocked[email]
	return ok, nil
}
