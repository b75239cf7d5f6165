package model

// Product is owned by the backend catalog; the client only reads it.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Size          string  `json:"size"`
	ImageURL      string  `json:"imageUrl"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stockQuantity"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}
