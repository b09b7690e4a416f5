package handler

import (
	"net/http"
	"strconv"

	"boutique-be/internal/offer"

	"github.com/labstack/echo/v4"
)

type OfferHandler struct {
	svc offer.Service
}

func NewOfferHandler(svc offer.Service) *OfferHandler {
	return &OfferHandler{svc: svc}
}

func (h *OfferHandler) ListLiveOffers(c echo.Context) error {
	offers, err := h.svc.ListLiveOffers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, offers)
}

func (h *OfferHandler) GetOffer(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid offer id")
	}

	o, err := h.svc.GetOffer(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, o)
}
