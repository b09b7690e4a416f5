package cart

import (
	"context"

	"boutique-be/internal/catalog"
)

// Service defines the business logic for carts.
type Service interface {
	AddToCart(ctx context.Context, userID, productID int64) (*Line, error)
	GetCart(ctx context.Context, userID int64) (*Cart, error)
	UpdateQuantity(ctx context.Context, userID, lineID int64, quantity int) error
	RemoveFromCart(ctx context.Context, userID, lineID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
}

func NewService(repo Repository, catalogRepo catalog.Repository) Service {
	return &service{repo: repo, catalogRepo: catalogRepo}
}

// AddToCart puts one unit of a product into the user's cart. Adding a
// product that is already in the cart bumps its quantity by one.
func (s *service) AddToCart(ctx context.Context, userID, productID int64) (*Line, error) {
	product, err := s.catalogRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Available {
		return nil, ErrProductNotFound
	}

	if product.Quantity <= 0 {
		return nil, ErrOutOfStock
	}

	return s.repo.UpsertLine(ctx, userID, productID)
}

// GetCart returns the user's cart rows priced at the current catalog
// price, with the running total.
func (s *service) GetCart(ctx context.Context, userID int64) (*Cart, error) {
	rows, err := s.repo.GetCartRows(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart := &Cart{Items: rows}
	for i := range rows {
		cart.Total += rows[i].Subtotal()
	}

	return cart, nil
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less
// removes the line instead.
func (s *service) UpdateQuantity(ctx context.Context, userID, lineID int64, quantity int) error {
	if quantity <= 0 {
		return s.repo.RemoveLine(ctx, userID, lineID)
	}

	return s.repo.UpdateQuantity(ctx, userID, lineID, quantity)
}

func (s *service) RemoveFromCart(ctx context.Context, userID, lineID int64) error {
	return s.repo.RemoveLine(ctx, userID, lineID)
}

func (s *service) ClearCart(ctx context.Context, userID int64) error {
	return s.repo.ClearCart(ctx, userID)
}
