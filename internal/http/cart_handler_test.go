package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/BodapatiPranav/E-Commerce-Website/internal/domain"
	"github.com/BodapatiPranav/E-Commerce-Website/internal/service"
)

type cartMock struct {
	cart         *domain.ResolvedCart
	err          error
	lastQuantity int
}

func (m *cartMock) GetOrCreateCart(ctx context.Context, accountID string) (*domain.ResolvedCart, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *cartMock) AddItem(ctx context.Context, accountID, productID string, quantity int) (*domain.ResolvedCart, error) {
	m.lastQuantity = quantity
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *cartMock) UpdateItemQuantity(ctx context.Context, accountID, itemID string, quantity int) (*domain.ResolvedCart, error) {
	m.lastQuantity = quantity
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *cartMock) RemoveItem(ctx context.Context, accountID, itemID string) (*domain.ResolvedCart, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func testCart() *domain.ResolvedCart {
	return &domain.ResolvedCart{
		ID:        "cart-1",
		AccountID: "acct-1",
		Items: []domain.ResolvedItem{
			{
				ID:       "item-1",
				Product:  domain.Product{ID: "p1", Name: "Wireless Mouse", Price: 29.99},
				Quantity: 2,
			},
		},
		TotalItemCount: 2,
		Subtotal:       59.98,
	}
}

func authedRequest(method, target string, body []byte) *http.Request {
	var request *http.Request
	if body != nil {
		request = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		request = httptest.NewRequest(method, target, nil)
	}
	return request.WithContext(ContextWithAccountID(request.Context(), "acct-1"))
}

func TestGetCart_Success(t *testing.T) {
	handler := NewCartHandler(&cartMock{cart: testCart()}, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.GetCart(recorder, authedRequest("GET", "/", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response CartResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Cart.TotalItemCount != 2 {
		t.Errorf("Expected totalItemCount 2, got %d", response.Cart.TotalItemCount)
	}
}

func TestGetCart_Unauthorized(t *testing.T) {
	handler := NewCartHandler(&cartMock{cart: testCart()}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/", nil)
	// No account in context

	handler.GetCart(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestAddItem_HandlerSuccess(t *testing.T) {
	mock := &cartMock{cart: testCart()}
	handler := NewCartHandler(mock, 5*time.Second)

	body, _ := json.Marshal(map[string]interface{}{"productId": "p1", "quantity": 2})
	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, authedRequest("POST", "/", body))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if mock.lastQuantity != 2 {
		t.Errorf("Expected quantity 2 passed through, got %d", mock.lastQuantity)
	}
}

func TestAddItem_QuantityDefaultsToOne(t *testing.T) {
	mock := &cartMock{cart: testCart()}
	handler := NewCartHandler(mock, 5*time.Second)

	body, _ := json.Marshal(map[string]interface{}{"productId": "p1"})
	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, authedRequest("POST", "/", body))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if mock.lastQuantity != 1 {
		t.Errorf("Expected omitted quantity to default to 1, got %d", mock.lastQuantity)
	}
}

func TestAddItem_HandlerInvalidJSON(t *testing.T) {
	handler := NewCartHandler(&cartMock{cart: testCart()}, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, authedRequest("POST", "/", []byte("invalid json")))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "invalid_request" {
		t.Errorf("Expected error code 'invalid_request', got '%s'", response.Code)
	}
}

func TestAddItem_MissingProductID(t *testing.T) {
	handler := NewCartHandler(&cartMock{cart: testCart()}, 5*time.Second)

	body, _ := json.Marshal(map[string]interface{}{"quantity": 2})
	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, authedRequest("POST", "/", body))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "invalid_product_id" {
		t.Errorf("Expected error code 'invalid_product_id', got '%s'", response.Code)
	}
}

func TestAddItem_HandlerInvalidQuantity(t *testing.T) {
	handler := NewCartHandler(&cartMock{cart: testCart()}, 5*time.Second)

	tests := []struct {
		name     string
		quantity int
	}{
		{"zero quantity", 0},
		{"negative quantity", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(map[string]interface{}{"productId": "p1", "quantity": tt.quantity})
			recorder := httptest.NewRecorder()
			handler.AddItem(recorder, authedRequest("POST", "/", body))

			if recorder.Code != http.StatusBadRequest {
				t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
			}

			var response ErrorResponse
			json.NewDecoder(recorder.Body).Decode(&response)
			if response.Code != "invalid_quantity" {
				t.Errorf("Expected error code 'invalid_quantity', got '%s'", response.Code)
			}
		})
	}
}

func TestAddItem_UnknownProductMapsToNotFound(t *testing.T) {
	handler := NewCartHandler(&cartMock{err: service.ErrNotFound}, 5*time.Second)

	body, _ := json.Marshal(map[string]interface{}{"productId": "missing", "quantity": 1})
	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, authedRequest("POST", "/", body))

	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status code %d, got %d", http.StatusNotFound, recorder.Code)
	}
}

func withItemID(request *http.Request, itemID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("itemID", itemID)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdateQuantity_HandlerSuccess(t *testing.T) {
	mock := &cartMock{cart: testCart()}
	handler := NewCartHandler(mock, 5*time.Second)

	body, _ := json.Marshal(UpdateQuantityRequestDTO{Quantity: 7})
	recorder := httptest.NewRecorder()
	request := withItemID(authedRequest("PUT", "/item-1", body), "item-1")

	handler.UpdateQuantity(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if mock.lastQuantity != 7 {
		t.Errorf("Expected quantity 7 passed through, got %d", mock.lastQuantity)
	}
}

func TestUpdateQuantity_HandlerInvalidQuantity(t *testing.T) {
	handler := NewCartHandler(&cartMock{cart: testCart()}, 5*time.Second)

	tests := []struct {
		name     string
		quantity int
	}{
		{"zero quantity", 0},
		{"negative quantity", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(UpdateQuantityRequestDTO{Quantity: tt.quantity})
			recorder := httptest.NewRecorder()
			request := withItemID(authedRequest("PUT", "/item-1", body), "item-1")

			handler.UpdateQuantity(recorder, request)

			if recorder.Code != http.StatusBadRequest {
				t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
			}

			var response ErrorResponse
			json.NewDecoder(recorder.Body).Decode(&response)
			if response.Code != "invalid_quantity" {
				t.Errorf("Expected error code 'invalid_quantity', got '%s'", response.Code)
			}
		})
	}
}

func TestUpdateQuantity_UnknownItem(t *testing.T) {
	handler := NewCartHandler(&cartMock{err: service.ErrNotFound}, 5*time.Second)

	body, _ := json.Marshal(UpdateQuantityRequestDTO{Quantity: 3})
	recorder := httptest.NewRecorder()
	request := withItemID(authedRequest("PUT", "/missing", body), "missing")

	handler.UpdateQuantity(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status code %d, got %d", http.StatusNotFound, recorder.Code)
	}
}

func TestRemoveItem_HandlerSuccess(t *testing.T) {
	empty := &domain.ResolvedCart{ID: "cart-1", AccountID: "acct-1", Items: []domain.ResolvedItem{}}
	handler := NewCartHandler(&cartMock{cart: empty}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := withItemID(authedRequest("DELETE", "/item-1", nil), "item-1")

	handler.RemoveItem(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response CartResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Cart.Items) != 0 {
		t.Errorf("Expected empty cart, got %d items", len(response.Cart.Items))
	}
}

func TestRemoveItem_HandlerUnknownItem(t *testing.T) {
	handler := NewCartHandler(&cartMock{err: service.ErrNotFound}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := withItemID(authedRequest("DELETE", "/missing", nil), "missing")

	handler.RemoveItem(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status code %d, got %d", http.StatusNotFound, recorder.Code)
	}
}
