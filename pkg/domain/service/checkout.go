package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/model"
)

var ErrEmptyCart = errors.New("cannot check out an empty cart")

// CheckoutForm carries the contact and shipping fields submitted with an
// order. Field validation happens in the UI before the core is called.
type CheckoutForm struct {
	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
	PhoneNumber     string
	City            string
	State           string
	Zip             string
}

type CreateOrderItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerName    string            `json:"customerName"`
	CustomerEmail   string            `json:"customerEmail"`
	ShippingAddress string            `json:"shippingAddress"`
	PhoneNumber     string            `json:"phoneNumber"`
	City            string            `json:"city"`
	State           string            `json:"state"`
	Zip             string            `json:"zip"`
	OrderItems      []CreateOrderItem `json:"orderItems"`
}

// OrderGateway is the slice of the REST backend the order flows need.
type OrderGateway interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) error
	ListOrders(ctx context.Context) ([]model.AdminOrder, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}

type ProductGateway interface {
	Product(ctx context.Context, id int) (*model.Product, error)
}

// CheckoutService submits the cart as an order and freezes the confirmation
// snapshot. The snapshot is taken before the cart is cleared; a rejected
// submission leaves the cart untouched.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, form CheckoutForm) (*model.OrderDetails, error)
}

func NewCheckoutService(cart CartService, gateway OrderGateway, dispatcher EventDispatcher) CheckoutService {
	return &checkoutService{cart: cart, gateway: gateway, dispatcher: dispatcher}
}

type checkoutService struct {
	cart       CartService
	gateway    OrderGateway
	dispatcher EventDispatcher
}

func (s *checkoutService) PlaceOrder(ctx context.Context, form CheckoutForm) (*model.OrderDetails, error) {
	// Snapshot first: the cart is cleared on success and cannot be re-read
	// by the confirmation screen.
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	req := CreateOrderRequest{
		CustomerName:    form.CustomerName,
		CustomerEmail:   form.CustomerEmail,
		ShippingAddress: form.ShippingAddress,
		PhoneNumber:     form.PhoneNumber,
		City:            form.City,
		State:           form.State,
		Zip:             form.Zip,
		OrderItems:      make([]CreateOrderItem, 0, len(items)),
	}
	for _, item := range items {
		req.OrderItems = append(req.OrderItems, CreateOrderItem{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}

	if err := s.gateway.CreateOrder(ctx, req); err != nil {
		return nil, err
	}

	details := buildOrderDetails(form, items)
	if err := s.cart.Clear(); err != nil {
		log.WithError(err).Warn("order placed but cart could not be cleared")
	}
	_ = s.dispatcher.Dispatch(model.OrderPlaced{OrderNumber: details.OrderNumber, Total: details.Total})
	return details, nil
}

func buildOrderDetails(form CheckoutForm, items []model.CartItem) *model.OrderDetails {
	firstName, lastName := splitFullName(form.CustomerName)
	quote := PriceCart(items).Rounded()

	lines := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, model.OrderItem{
			ID:       item.Product.ID,
			Name:     item.Product.Name,
			Price:    item.Product.Price,
			Quantity: item.Quantity,
		})
	}

	return &model.OrderDetails{
		OrderNumber: newOrderNumber(),
		Email:       form.CustomerEmail,
		FirstName:   firstName,
		LastName:    lastName,
		Address:     form.ShippingAddress,
		City:        form.City,
		State:       form.State,
		Zip:         form.Zip,
		Items:       lines,
		Subtotal:    quote.Subtotal,
		Shipping:    quote.Shipping,
		Tax:         quote.Tax,
		Total:       quote.Total,
		Date:        time.Now().Format("01/02/2006"),
	}
}

// splitFullName keeps the storefront's historical rule for its single
// full-name field: first space-separated part is the first name, the second
// part (if any) is the last name.
func splitFullName(full string) (string, string) {
	parts := strings.Split(full, " ")
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

const orderNumberLength = 9

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderNumber mints the customer-facing token printed on the confirmation
// screen. It is not an authoritative identifier; the backend keeps its own.
func newOrderNumber() string {
	raw := uuid.New()
	buf := make([]byte, orderNumberLength)
	for i := range buf {
		buf[i] = orderNumberAlphabet[int(raw[i])%len(orderNumberAlphabet)]
	}
	return string(buf)
}
