package service

import (
	"math"

	"storefront/pkg/domain/model"
)

const (
	ShippingFlatRate = 5.00
	TaxRate          = 0.04
)

// Quote holds the derived money amounts for a cart snapshot. Values carry
// full float precision; call Rounded before showing them to a user.
type Quote struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// PriceCart is the one total-derivation formula. The cart page, the checkout
// page and the confirmation snapshot all call it, so the three screens agree
// bit-for-bit on the same cart contents.
func PriceCart(items []model.CartItem) Quote {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Product.Price * float64(item.Quantity)
	}
	tax := subtotal * TaxRate
	return Quote{
		Subtotal: subtotal,
		Shipping: ShippingFlatRate,
		Tax:      tax,
		Total:    subtotal + ShippingFlatRate + tax,
	}
}

// Rounded returns the quote at presentation precision, two decimal places.
func (q Quote) Rounded() Quote {
	return Quote{
		Subtotal: Round2(q.Subtotal),
		Shipping: Round2(q.Shipping),
		Tax:      Round2(q.Tax),
		Total:    Round2(q.Total),
	}
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
