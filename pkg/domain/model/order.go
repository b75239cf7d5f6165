package model

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusComplete OrderStatus = "complete"
)

func (s OrderStatus) Valid() bool {
	return s == StatusPending || s == StatusComplete
}

type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderDetails is the immutable snapshot captured at successful checkout for
// the confirmation screen. The order number is a client-side token, not an
// authoritative backend identifier.
type OrderDetails struct {
	OrderNumber string      `json:"orderNumber"`
	Email       string      `json:"email"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Zip         string      `json:"zip"`
	Items       []OrderItem `json:"items"`
	Subtotal    float64     `json:"subtotal"`
	Shipping    float64     `json:"shipping"`
	Tax         float64     `json:"tax"`
	Total       float64     `json:"total"`
	Date        string      `json:"date"`
}

type AdminOrderItem struct {
	ID              string  `json:"id"`
	ProductID       int     `json:"productId"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
}

// AdminOrder mirrors the backend order record. Status is the only field the
// admin client mutates.
type AdminOrder struct {
	ID              string           `json:"id"`
	CustomerName    string           `json:"customerName"`
	CustomerEmail   string           `json:"customerEmail"`
	ShippingAddress string           `json:"shippingAddress"`
	PhoneNumber     string           `json:"phoneNumber"`
	TotalAmount     float64          `json:"totalAmount"`
	OrderDate       string           `json:"orderDate"`
	Status          OrderStatus      `json:"status"`
	OrderItems      []AdminOrderItem `json:"orderItems"`
}
