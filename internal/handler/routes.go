package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type Handlers struct {
	Catalog *CatalogHandler
	Offer   *OfferHandler
	Cart    *CartHandler
	Order   *OrderHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/products", h.Catalog.ListProducts)
	e.GET("/products/:id", h.Catalog.GetProduct)
	e.GET("/categories", h.Catalog.ListCategories)

	e.GET("/offers", h.Offer.ListLiveOffers)
	e.GET("/offers/:id", h.Offer.GetOffer)

	e.GET("/cart", h.Cart.GetCart)
	e.POST("/cart/items", h.Cart.AddToCart)
	e.PATCH("/cart/items/:id", h.Cart.UpdateQuantity)
	e.DELETE("/cart/items/:id", h.Cart.RemoveFromCart)
	e.DELETE("/cart", h.Cart.ClearCart)

	e.POST("/checkout", h.Order.Checkout)
	e.GET("/orders", h.Order.ListOrders)
	e.GET("/orders/:id", h.Order.GetOrder)
}
