package service

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/model"
)

// AdminOrderService maintains the admin's local view of the order list and
// applies status changes optimistically: the local list is patched before
// the remote write is issued, and a rejected write is undone by re-fetching
// the full authoritative list rather than reverting the single change.
type AdminOrderService interface {
	Refresh(ctx context.Context) error
	Orders() []model.AdminOrder
	ChangeStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}

func NewAdminOrderService(gateway OrderGateway, dispatcher EventDispatcher) AdminOrderService {
	return &adminOrderService{gateway: gateway, dispatcher: dispatcher}
}

type adminOrderService struct {
	gateway    OrderGateway
	dispatcher EventDispatcher

	mu     sync.RWMutex
	orders []model.AdminOrder
}

// Refresh overwrites the local list wholesale with the backend's.
func (s *adminOrderService) Refresh(ctx context.Context) error {
	orders, err := s.gateway.ListOrders(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch order list")
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

func (s *adminOrderService) Orders() []model.AdminOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]model.AdminOrder, len(s.orders))
	copy(snapshot, s.orders)
	return snapshot
}

func (s *adminOrderService) ChangeStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if !status.Valid() {
		return model.ErrInvalidStatus
	}
	if !s.apply(orderID, status) {
		return model.ErrOrderNotFound
	}

	if err := s.gateway.UpdateOrderStatus(ctx, orderID, status); err != nil {
		// The optimistic value must not survive a rejected write; resync
		// from the authoritative source.
		if refreshErr := s.Refresh(ctx); refreshErr != nil {
			log.WithError(refreshErr).Error("resynchronize order list after rejected status update")
		}
		return errors.Wrapf(err, "update status of order %s", orderID)
	}

	_ = s.dispatcher.Dispatch(model.OrderStatusChanged{OrderID: orderID, Status: status})
	return nil
}

func (s *adminOrderService) apply(orderID string, status model.OrderStatus) bool {
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
