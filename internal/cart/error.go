package cart

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product out of stock")
	ErrLineNotFound    = errors.New("cart line not found")
)
