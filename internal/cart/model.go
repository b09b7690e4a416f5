package cart

import "time"

// Line is a single cart row as stored. One row per (user, product).
type Line struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// CartRow is a cart line joined with its product. Price is the product's
// current price, so subtotals always reflect the live catalog.
type CartRow struct {
	LineID      int64     `json:"line_id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
}

func (r *CartRow) Subtotal() float64 {
	return r.Price * float64(r.Quantity)
}

type Cart struct {
	Items []CartRow `json:"items"`
	Total float64   `json:"total"`
}
