package backend

import (
	"sync"

	"storefront/pkg/domain/model"
)

// Store holds the simulator's catalog and orders in memory. Orders keep
// insertion order for listing.
type Store struct {
	mu       sync.RWMutex
	products map[int]model.Product
	orders   []model.AdminOrder
}

func NewStore(products []model.Product) *Store {
	byID := make(map[int]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Store{products: byID}
}

func (s *Store) Product(id int) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	return p, ok
}

func (s *Store) AddOrder(order model.AdminOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
}

func (s *Store) Orders() []model.AdminOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]model.AdminOrder, len(s.orders))
	copy(orders, s.orders)
	return orders
}

func (s *Store) SetStatus(orderID string, status model.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			return true
		}
	}
	return false
}
