package order

import "errors"

var (
	ErrCartEmpty      = errors.New("cart is empty")
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidPayment = errors.New("invalid payment method")
)
