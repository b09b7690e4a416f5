package catalog

import "time"

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	CategoryID  int64     `json:"category_id"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductFilter narrows down the storefront listing.
type ProductFilter struct {
	CategoryID *int64
	// InStockOnly keeps products that are available and have stock left.
	InStockOnly bool
}
