package catalog

import (
	"context"
)

// Service defines read access to the storefront catalog. The core never
// creates or deletes products; that stays with the back office.
type Service interface {
	ListProducts(ctx context.Context, categoryID *int64) ([]*Product, error)
	GetProduct(ctx context.Context, productID int64) (*Product, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListProducts returns the sellable products: available and with stock left,
// optionally narrowed to one category.
func (s *service) ListProducts(ctx context.Context, categoryID *int64) ([]*Product, error) {
	return s.repo.GetProducts(ctx, ProductFilter{
		CategoryID:  categoryID,
		InStockOnly: true,
	})
}

func (s *service) GetProduct(ctx context.Context, productID int64) (*Product, error) {
	if productID <= 0 {
		return nil, ErrProductNotFound
	}

	p, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	return p, nil
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.GetCategories(ctx)
}
