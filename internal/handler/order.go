package handler

import (
	"net/http"
	"strconv"

	"boutique-be/internal/order"
	"boutique-be/internal/utils"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type checkoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=cash card transfer"`
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := utils.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "payment_method must be one of cash, card, transfer")
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = string(order.PaymentCash)
	}

	o, err := h.svc.Checkout(c.Request().Context(), userID, order.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := utils.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}

	orders, err := h.svc.GetOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := utils.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	o, err := h.svc.GetOrderDetail(c.Request().Context(), userID, orderID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, o)
}
