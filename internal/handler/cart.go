package handler

import (
	"net/http"
	"strconv"

	"boutique-be/internal/cart"
	"boutique-be/internal/utils"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	svc cart.Service
}

func NewCartHandler(svc cart.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

type addToCartRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := utils.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}

	result, err := h.svc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, ok := utils.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "product_id is required")
	}

	line, err := h.svc.AddToCart(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, line)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, ok := utils.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}

	lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid cart line id")
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "quantity is required and must not be negative")
	}

	if err := h.svc.UpdateQuantity(c.Request().Context(), userID, lineID, *req.Quantity); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, ok := utils.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}

	lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid cart line id")
	}

	if err := h.svc.RemoveFromCart(c.Request().Context(), userID, lineID); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, ok := utils.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}

	if err := h.svc.ClearCart(c.Request().Context(), userID); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
