package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boutique-be/internal/cart"
	"boutique-be/internal/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func authedRequest(method, target, body string, userID int64) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(utils.SetUserContext(req.Context(), userID))
}

func TestCartHandler_AddToCart(t *testing.T) {
	e := newTestEcho()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockCartService)
		h := NewCartHandler(svc)

		svc.On("AddToCart", mock.Anything, int64(7), int64(42)).
			Return(&cart.Line{ID: 1, UserID: 7, ProductID: 42, Quantity: 1}, nil)

		req := authedRequest(http.MethodPost, "/cart/items", `{"product_id":42}`, 7)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, h.AddToCart(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"quantity":1`)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		svc := new(MockCartService)
		h := NewCartHandler(svc)

		req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"product_id":42}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, h.AddToCart(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "AddToCart")
	})

	t.Run("MissingProductID", func(t *testing.T) {
		svc := new(MockCartService)
		h := NewCartHandler(svc)

		req := authedRequest(http.MethodPost, "/cart/items", `{}`, 7)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, h.AddToCart(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("OutOfStock", func(t *testing.T) {
		svc := new(MockCartService)
		h := NewCartHandler(svc)

		svc.On("AddToCart", mock.Anything, int64(7), int64(51)).
			Return(nil, cart.ErrOutOfStock)

		req := authedRequest(http.MethodPost, "/cart/items", `{"product_id":51}`, 7)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, h.AddToCart(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		svc := new(MockCartService)
		h := NewCartHandler(svc)

		svc.On("AddToCart", mock.Anything, int64(7), int64(99)).
			Return(nil, cart.ErrProductNotFound)

		req := authedRequest(http.MethodPost, "/cart/items", `{"product_id":99}`, 7)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, h.AddToCart(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCartHandler_GetCart(t *testing.T) {
	e := newTestEcho()

	svc := new(MockCartService)
	h := NewCartHandler(svc)

	svc.On("GetCart", mock.Anything, int64(7)).Return(&cart.Cart{
		Items: []cart.CartRow{{LineID: 1, ProductID: 42, ProductName: "Scarf", Price: 10.0, Quantity: 2}},
		Total: 20.0,
	}, nil)

	req := authedRequest(http.MethodGet, "/cart", "", 7)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":20`)
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	e := newTestEcho()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockCartService)
		h := NewCartHandler(svc)

		svc.On("UpdateQuantity", mock.Anything, int64(7), int64(5), 3).Return(nil)

		req := authedRequest(http.MethodPatch, "/cart/items/5", `{"quantity":3}`, 7)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("5")

		assert.NoError(t, h.UpdateQuantity(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("ExplicitZeroRemovesLine", func(t *testing.T) {
		svc := new(MockCartService)
		h := NewCartHandler(svc)

		svc.On("UpdateQuantity", mock.Anything, int64(7), int64(5), 0).Return(nil)

		req := authedRequest(http.MethodPatch, "/cart/items/5", `{"quantity":0}`, 7)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("5")

		assert.NoError(t, h.UpdateQuantity(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("MissingQuantity", func(t *testing.T) {
		svc := new(MockCartService)
		h := NewCartHandler(svc)

		req := authedRequest(http.MethodPatch, "/cart/items/5", `{}`, 7)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("5")

		assert.NoError(t, h.UpdateQuantity(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "UpdateQuantity")
	})

	t.Run("LineNotFound", func(t *testing.T) {
		svc := new(MockCartService)
		h := NewCartHandler(svc)

		svc.On("UpdateQuantity", mock.Anything, int64(7), int64(99), 3).Return(cart.ErrLineNotFound)

		req := authedRequest(http.MethodPatch, "/cart/items/99", `{"quantity":3}`, 7)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("99")

		assert.NoError(t, h.UpdateQuantity(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("InvalidLineID", func(t *testing.T) {
		svc := new(MockCartService)
		h := NewCartHandler(svc)

		req := authedRequest(http.MethodPatch, "/cart/items/abc", `{"quantity":3}`, 7)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		assert.NoError(t, h.UpdateQuantity(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "UpdateQuantity")
	})
}

func TestCartHandler_RemoveFromCart(t *testing.T) {
	e := newTestEcho()

	svc := new(MockCartService)
	h := NewCartHandler(svc)

	svc.On("RemoveFromCart", mock.Anything, int64(7), int64(5)).Return(nil)

	req := authedRequest(http.MethodDelete, "/cart/items/5", "", 7)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	assert.NoError(t, h.RemoveFromCart(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCartHandler_ClearCart(t *testing.T) {
	e := newTestEcho()

	svc := new(MockCartService)
	h := NewCartHandler(svc)

	svc.On("ClearCart", mock.Anything, int64(7)).Return(nil)

	req := authedRequest(http.MethodDelete, "/cart", "", 7)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.ClearCart(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
