package handler

import (
	"context"

	"boutique-be/internal/cart"
	"boutique-be/internal/catalog"
	"boutique-be/internal/offer"
	"boutique-be/internal/order"

	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListProducts(ctx context.Context, categoryID *int64) ([]*catalog.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, productID int64) (*catalog.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockCatalogService) ListCategories(ctx context.Context) ([]*catalog.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Category), args.Error(1)
}

type MockOfferService struct {
	mock.Mock
}

func (m *MockOfferService) ListLiveOffers(ctx context.Context) ([]*offer.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.Offer), args.Error(1)
}

func (m *MockOfferService) GetOffer(ctx context.Context, offerID int64) (*offer.Offer, error) {
	args := m.Called(ctx, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddToCart(ctx context.Context, userID, productID int64) (*cart.Line, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Line), args.Error(1)
}

func (m *MockCartService) GetCart(ctx context.Context, userID int64) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, userID, lineID int64, quantity int) error {
	args := m.Called(ctx, userID, lineID, quantity)
	return args.Error(0)
}

func (m *MockCartService) RemoveFromCart(ctx context.Context, userID, lineID int64) error {
	args := m.Called(ctx, userID, lineID)
	return args.Error(0)
}

func (m *MockCartService) ClearCart(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, userID int64, payment order.PaymentMethod) (*order.Order, error) {
	args := m.Called(ctx, userID, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) GetOrders(ctx context.Context, userID int64) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) GetOrderDetail(ctx context.Context, userID, orderID int64) (*order.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
