package model

// CartItem pairs a catalog product with the selected quantity. A cart holds
// at most one item per product id; duplicates are merged on add.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartRepository persists the full cart between sessions. Save rewrites the
// whole sequence; Load returns an empty cart when nothing usable is stored.
type CartRepository interface {
	Load() ([]CartItem, error)
	Save(items []CartItem) error
}
