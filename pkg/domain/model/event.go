package model

type CartItemAdded struct {
	ProductID int
	Quantity  int
}

func (e CartItemAdded) Type() string { return "CartItemAdded" }

type CartItemRemoved struct {
	ProductID int
}

func (e CartItemRemoved) Type() string { return "CartItemRemoved" }

type CartQuantityChanged struct {
	ProductID int
	Quantity  int
}

func (e CartQuantityChanged) Type() string { return "CartQuantityChanged" }

type CartCleared struct{}

func (e CartCleared) Type() string { return "CartCleared" }

type OrderPlaced struct {
	OrderNumber string
	Total       float64
}

func (e OrderPlaced) Type() string { return "OrderPlaced" }

type OrderStatusChanged struct {
	OrderID string
	Status  OrderStatus
}

func (e OrderStatusChanged) Type() string { return "OrderStatusChanged" }
