package service

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/model"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive number")

type Event interface {
	Type() string
}

type EventDispatcher interface {
	Dispatch(event Event) error
}

// CartService is the single source of truth for the shopper's current
// selection. Every mutation is written through to the repository after the
// in-memory change, so durable state never runs ahead of what readers see.
type CartService interface {
	Add(product model.Product, quantity int) error
	Remove(productID int) error
	SetQuantity(productID int, quantity int) error
	Clear() error
	Items() []model.CartItem
	Total() float64
	Count() int
}

// NewCartService hydrates the cart from the repository exactly once. An
// unreadable stored cart degrades to an empty one; hydration never writes
// back, so a fresh start cannot clobber a cart persisted by a previous run.
func NewCartService(repo model.CartRepository, dispatcher EventDispatcher) CartService {
	items, err := repo.Load()
	if err != nil {
		log.WithError(err).Warn("stored cart is unreadable, starting empty")
		items = nil
	}
	return &cartService{repo: repo, dispatcher: dispatcher, items: items}
}

type cartService struct {
	repo       model.CartRepository
	dispatcher EventDispatcher
	items      []model.CartItem
}

func (s *cartService) Add(product model.Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	merged := false
	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, model.CartItem{Product: product, Quantity: quantity})
	}

	if err := s.repo.Save(s.items); err != nil {
		return err
	}
	_ = s.dispatcher.Dispatch(model.CartItemAdded{ProductID: product.ID, Quantity: quantity})
	return nil
}

func (s *cartService) Remove(productID int) error {
	for i := range s.items {
		if s.items[i].Product.ID != productID {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		if err := s.repo.Save(s.items); err != nil {
			return err
		}
		_ = s.dispatcher.Dispatch(model.CartItemRemoved{ProductID: productID})
		return nil
	}
	return nil
}

func (s *cartService) SetQuantity(productID int, quantity int) error {
	if quantity <= 0 {
		return s.Remove(productID)
	}

	for i := range s.items {
		if s.items[i].Product.ID != productID {
			continue
		}
		s.items[i].Quantity = quantity
		if err := s.repo.Save(s.items); err != nil {
			return err
		}
		_ = s.dispatcher.Dispatch(model.CartQuantityChanged{ProductID: productID, Quantity: quantity})
		return nil
	}
	return nil
}

func (s *cartService) Clear() error {
	s.items = nil
	if err := s.repo.Save(s.items); err != nil {
		return err
	}
	_ = s.dispatcher.Dispatch(model.CartCleared{})
	return nil
}

// Items returns a copy; later mutations do not leak into snapshots taken by
// callers.
func (s *cartService) Items() []model.CartItem {
	snapshot := make([]model.CartItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

func (s *cartService) Total() float64 {
	var total float64
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func (s *cartService) Count() int {
	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}
