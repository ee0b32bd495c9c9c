package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maricoIR/HengamGallery/internal/cart/domain"
)

func TestAddItem_Success(t *testing.T) {
	handler := NewCartHandler(newTestCart(), newTestCatalog())

	reqBytes, _ := json.Marshal(&AddItemRequestDTO{ProductID: 1, Quantity: 2})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/items", bytes.NewReader(reqBytes))

	handler.AddItem(recorder, request)

	if recorder.Code != http.StatusCreated {
		t.Errorf("Expected status code %d, got %d", http.StatusCreated, recorder.Code)
	}

	var response domain.Cart
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.TotalItems != 2 {
		t.Errorf("Expected 2 total items, got %d", response.TotalItems)
	}
	if len(response.Lines) != 1 {
		t.Errorf("Expected 1 line, got %d", len(response.Lines))
	}
}

func TestAddItem_DefaultsQuantityToOne(t *testing.T) {
	handler := NewCartHandler(newTestCart(), newTestCatalog())

	reqBytes, _ := json.Marshal(&AddItemRequestDTO{ProductID: 1})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/items", bytes.NewReader(reqBytes))

	handler.AddItem(recorder, request)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("Expected status code %d, got %d", http.StatusCreated, recorder.Code)
	}

	var response domain.Cart
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.TotalItems != 1 {
		t.Errorf("Expected 1 total item, got %d", response.TotalItems)
	}
}

func TestAddItem_InvalidJSON(t *testing.T) {
	handler := NewCartHandler(newTestCart(), newTestCatalog())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/items", bytes.NewReader([]byte("invalid json")))

	handler.AddItem(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "invalid_request" {
		t.Errorf("Expected error code 'invalid_request', got '%s'", response.Code)
	}
}

func TestAddItem_InvalidProductID(t *testing.T) {
	handler := NewCartHandler(newTestCart(), newTestCatalog())

	tests := []struct {
		name      string
		productID int64
	}{
		{"zero product_id", 0},
		{"negative product_id", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqBytes, _ := json.Marshal(&AddItemRequestDTO{ProductID: tt.productID, Quantity: 2})
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest("POST", "/items", bytes.NewReader(reqBytes))

			handler.AddItem(recorder, request)

			if recorder.Code != http.StatusBadRequest {
				t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
			}

			var response ErrorResponse
			json.NewDecoder(recorder.Body).Decode(&response)
			if response.Code != "invalid_product_id" {
				t.Errorf("Expected error code 'invalid_product_id', got '%s'", response.Code)
			}
		})
	}
}

func TestAddItem_InvalidQuantity(t *testing.T) {
	handler := NewCartHandler(newTestCart(), newTestCatalog())

	tests := []struct {
		name     string
		quantity int
	}{
		{"negative quantity", -1},
		{"quantity too high", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqBytes, _ := json.Marshal(&AddItemRequestDTO{ProductID: 1, Quantity: tt.quantity})
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest("POST", "/items", bytes.NewReader(reqBytes))

			handler.AddItem(recorder, request)

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

func TestAddItem_UnknownProduct(t *testing.T) {
	handler := NewCartHandler(newTestCart(), newTestCatalog())

	reqBytes, _ := json.Marshal(&AddItemRequestDTO{ProductID: 999, Quantity: 1})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/items", bytes.NewReader(reqBytes))

	handler.AddItem(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status code %d, got %d", http.StatusNotFound, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "not_found" {
		t.Errorf("Expected error code 'not_found', got '%s'", response.Code)
	}
}

func TestAddItem_MergesVariantLines(t *testing.T) {
	handler := NewCartHandler(newTestCart(), newTestCatalog())

	add := func(variations map[string]string) {
		reqBytes, _ := json.Marshal(&AddItemRequestDTO{ProductID: 1, Quantity: 1, Variations: variations})
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("POST", "/items", bytes.NewReader(reqBytes))
		handler.AddItem(recorder, request)
		if recorder.Code != http.StatusCreated {
			t.Fatalf("Expected status code %d, got %d", http.StatusCreated, recorder.Code)
		}
	}

	add(map[string]string{"size": "18"})
	add(map[string]string{"size": "18"})
	add(map[string]string{"size": "20"})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/", nil)
	handler.GetCart(recorder, request)

	var response domain.Cart
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Lines) != 2 {
		t.Errorf("Expected 2 lines after merge, got %d", len(response.Lines))
	}
	if response.TotalItems != 3 {
		t.Errorf("Expected 3 total items, got %d", response.TotalItems)
	}
}

func TestUpdateQuantity_Success(t *testing.T) {
	handler := NewCartHandler(newTestCart(), newTestCatalog())

	addBytes, _ := json.Marshal(&AddItemRequestDTO{ProductID: 1, Quantity: 2})
	handler.AddItem(httptest.NewRecorder(), httptest.NewRequest("POST", "/items", bytes.NewReader(addBytes)))

	reqBytes, _ := json.Marshal(&UpdateQuantityRequestDTO{Quantity: 10})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("PUT", "/items/1", bytes.NewReader(reqBytes))
	request = withURLParam(request, "product_id", "1")

	handler.UpdateQuantity(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response domain.Cart
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Lines[0].Quantity != 10 {
		t.Errorf("Expected quantity 10, got %d", response.Lines[0].Quantity)
	}
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	handler := NewCartHandler(newTestCart(), newTestCatalog())

	addBytes, _ := json.Marshal(&AddItemRequestDTO{ProductID: 1, Quantity: 2})
	handler.AddItem(httptest.NewRecorder(), httptest.NewRequest("POST", "/items", bytes.NewReader(addBytes)))

	reqBytes, _ := json.Marshal(&UpdateQuantityRequestDTO{Quantity: 0})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("PUT", "/items/1", bytes.NewReader(reqBytes))
	request = withURLParam(request, "product_id", "1")

	handler.UpdateQuantity(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response domain.Cart
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Lines) != 0 {
		t.Errorf("Expected empty cart, got %d lines", len(response.Lines))
	}
}

func TestUpdateQuantity_InvalidProductID(t *testing.T) {
	handler := NewCartHandler(newTestCart(), newTestCatalog())

	tests := []struct {
		name      string
		productID string
	}{
		{"non-numeric product_id", "abc"},
		{"zero product_id", "0"},
		{"negative product_id", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqBytes, _ := json.Marshal(&UpdateQuantityRequestDTO{Quantity: 5})
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest("PUT", "/items/"+tt.productID, bytes.NewReader(reqBytes))
			request = withURLParam(request, "product_id", tt.productID)

			handler.UpdateQuantity(recorder, request)

			if recorder.Code != http.StatusBadRequest {
				t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
			}

			var response ErrorResponse
			json.NewDecoder(recorder.Body).Decode(&response)
			if response.Code != "invalid_product_id" {
				t.Errorf("Expected error code 'invalid_product_id', got '%s'", response.Code)
			}
		})
	}
}

func TestRemoveItem_Success(t *testing.T) {
	handler := NewCartHandler(newTestCart(), newTestCatalog())

	addBytes, _ := json.Marshal(&AddItemRequestDTO{ProductID: 1, Quantity: 2})
	handler.AddItem(httptest.NewRecorder(), httptest.NewRequest("POST", "/items", bytes.NewReader(addBytes)))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("DELETE", "/items/1", nil)
	request = withURLParam(request, "product_id", "1")

	handler.RemoveItem(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response domain.Cart
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Lines) != 0 {
		t.Errorf("Expected empty cart, got %d lines", len(response.Lines))
	}
}

func TestClearCart_Success(t *testing.T) {
	handler := NewCartHandler(newTestCart(), newTestCatalog())

	addBytes, _ := json.Marshal(&AddItemRequestDTO{ProductID: 1, Quantity: 2})
	handler.AddItem(httptest.NewRecorder(), httptest.NewRequest("POST", "/items", bytes.NewReader(addBytes)))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("DELETE", "/", nil)

	handler.ClearCart(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response domain.Cart
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Lines) != 0 || response.TotalPrice != 0 {
		t.Errorf("Expected empty cart with zero total, got %d lines, total %d", len(response.Lines), response.TotalPrice)
	}
}
