package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dental-store/models"
	"dental-store/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductFinder struct {
	products map[string]models.Product
}

func (s *stubProductFinder) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func cartRouter() (*gin.Engine, *stubProductFinder) {
	gin.SetMode(gin.TestMode)

	scalerPrice := 24.50
	finder := &stubProductFinder{products: map[string]models.Product{
		"prod-a": {ID: "prod-a", Name: "Periodontal Scaler", SKU: "PS-100", Price: &scalerPrice},
	}}

	ctrl := NewCartController(services.NewCartService(nil), finder)

	router := gin.New()
	router.GET("/api/cart", ctrl.GetCart)
	router.POST("/api/cart/items", ctrl.AddItem)
	router.PATCH("/api/cart/items/:productId", ctrl.UpdateItem)
	router.DELETE("/api/cart/items/:productId", ctrl.RemoveItem)
	router.DELETE("/api/cart", ctrl.ClearCart)
	return router, finder
}

func cartFromResponse(t *testing.T, w *httptest.ResponseRecorder) models.CartState {
	t.Helper()
	var body struct {
		Data models.CartState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data
}

// requests share the session cookie issued on first touch
func withCookie(req *http.Request, w *httptest.ResponseRecorder) *http.Request {
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestCartAddUpdateRemoveFlow(t *testing.T) {
	router, _ := cartRouter()

	addBody, _ := json.Marshal(models.AddCartItemRequest{ProductID: "prod-a", Quantity: 2})
	addReq := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewReader(addBody))
	addReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, addReq)

	require.Equal(t, 200, w.Code)
	state := cartFromResponse(t, w)
	assert.Equal(t, 2, state.ItemCount)
	assert.InDelta(t, 49.0, state.Total, 1e-9)

	updateBody, _ := json.Marshal(models.UpdateCartItemRequest{Quantity: 5})
	updateReq := withCookie(httptest.NewRequest(http.MethodPatch, "/api/cart/items/prod-a", bytes.NewReader(updateBody)), w)
	updateReq.Header.Set("Content-Type", "application/json")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, updateReq)

	require.Equal(t, 200, w2.Code)
	state = cartFromResponse(t, w2)
	assert.Equal(t, 5, state.ItemCount)

	removeReq := withCookie(httptest.NewRequest(http.MethodDelete, "/api/cart/items/prod-a", nil), w)
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, removeReq)

	require.Equal(t, 200, w3.Code)
	state = cartFromResponse(t, w3)
	assert.Empty(t, state.Items)
	assert.Zero(t, state.Total)
}

func TestCartAddUnknownProduct(t *testing.T) {
	router, _ := cartRouter()

	body, _ := json.Marshal(models.AddCartItemRequest{ProductID: "missing"})
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
}
