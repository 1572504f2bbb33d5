package store

import (
	"errors"
	"fmt"
	"sync"

	"la-carta/pkg/models"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// OrderStore holds today's not-yet-archived orders, newest first, plus the
// sequence counter behind order ids. Every operation holds the lock for its
// whole effect, so submissions, status updates and the archive drain never
// observe each other half-applied.
type OrderStore struct {
	mu     sync.Mutex
	orders []models.Order
	seq    int
}

func NewOrderStore() *OrderStore {
	return &OrderStore{seq: 1}
}

// Add assigns the next sequence id to the order and inserts it at the front.
// Consumers always see most-recent-first.
func (s *OrderStore) Add(order models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = fmt.Sprintf("PED-%03d", s.seq)
	s.seq++
	s.orders = append([]models.Order{order}, s.orders...)
	return order
}

// UpdateStatus overwrites the status of the order with the given id. Any
// string is accepted as a status.
func (s *OrderStore) UpdateStatus(id, status string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return s.orders[i], nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// List returns a copy of the active orders, newest first.
func (s *OrderStore) List() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// Drain atomically snapshots the active orders, clears the store and resets
// the sequence counter to 1. Orders submitted after the snapshot belong to
// the next cycle. This is the only way orders leave the store.
func (s *OrderStore) Drain() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.orders
	s.orders = nil
	s.seq = 1
	return snapshot
}
