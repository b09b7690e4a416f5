package order

import "context"

// Service defines the business logic for orders.
type Service interface {
	Checkout(ctx context.Context, userID int64, payment PaymentMethod) (*Order, error)
	GetOrders(ctx context.Context, userID int64) ([]*Order, error)
	GetOrderDetail(ctx context.Context, userID, orderID int64) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Checkout(ctx context.Context, userID int64, payment PaymentMethod) (*Order, error) {
	if !payment.Valid() {
		return nil, ErrInvalidPayment
	}

	return s.repo.CreateFromCart(ctx, userID, payment)
}

func (s *service) GetOrders(ctx context.Context, userID int64) ([]*Order, error) {
	return s.repo.GetOrders(ctx, userID)
}

// GetOrderDetail hides other users' orders behind ErrOrderNotFound so a
// probing client cannot tell a foreign order from a missing one.
func (s *service) GetOrderDetail(ctx context.Context, userID, orderID int64) (*Order, error) {
	if orderID <= 0 {
		return nil, ErrOrderNotFound
	}

	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.UserID != userID {
		return nil, ErrOrderNotFound
	}

	return o, nil
}
