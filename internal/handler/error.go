package handler

import (
	"errors"
	"net/http"

	"boutique-be/internal/cart"
	"boutique-be/internal/catalog"
	"boutique-be/internal/offer"
	"boutique-be/internal/order"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain sentinels to HTTP statuses. Anything unmapped
// is a 500 with a generic body so internals never leak to clients.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, catalog.ErrCategoryNotFound),
		errors.Is(err, offer.ErrOfferNotFound),
		errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, cart.ErrLineNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})

	case errors.Is(err, cart.ErrOutOfStock),
		errors.Is(err, order.ErrCartEmpty),
		errors.Is(err, order.ErrInvalidPayment):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})

	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{Error: "authentication required"})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}
