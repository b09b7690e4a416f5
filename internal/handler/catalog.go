package handler

import (
	"net/http"
	"strconv"

	"boutique-be/internal/catalog"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListProducts returns purchasable products, optionally narrowed to a
// category via ?category=<id>.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var categoryID *int64
	if raw := c.QueryParam("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(c, "invalid category id")
		}
		categoryID = &id
	}

	products, err := h.svc.ListProducts(c.Request().Context(), categoryID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid product id")
	}

	product, err := h.svc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.svc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, categories)
}
