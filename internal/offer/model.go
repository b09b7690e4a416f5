package offer

import "time"

type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

type Offer struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	DiscountKind  DiscountKind `json:"discount_kind"`
	DiscountValue float64      `json:"discount_value"`
	StartsAt      time.Time    `json:"starts_at"`
	EndsAt        time.Time    `json:"ends_at"`
	ImageURL      *string      `json:"image_url,omitempty"`
	Active        bool         `json:"active"`
	ProductIDs    []int64      `json:"product_ids"`
}

// IsLive reports whether the offer applies at the given instant. The window
// is inclusive on both ends and the result is never cached.
func (o *Offer) IsLive(now time.Time) bool {
	if !o.Active {
		return false
	}
	return !now.Before(o.StartsAt) && !now.After(o.EndsAt)
}
