package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/maricoIR/HengamGallery/internal/identity"
	"github.com/maricoIR/HengamGallery/internal/orders/repository"
)

type OrdersHandler struct {
	orders repository.OrderRepository
	store  *identity.Store
}

func NewOrdersHandler(orders repository.OrderRepository, store *identity.Store) *OrdersHandler {
	return &OrdersHandler{orders: orders, store: store}
}

// List returns the authenticated user's order history, newest first.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	user := h.store.CurrentUser()
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "login required")
		return
	}

	orders, err := h.orders.ListOrders(r.Context(), user.ID)
	if err != nil {
		log.Printf("failed to list orders: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "could not load orders")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// Get serves order tracking by id; no auth gate, the id is the capability.
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "id must be a uuid")
		return
	}

	order, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "order not found")
			return
		}
		log.Printf("failed to load order %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "could not load order")
		return
	}
	respondJSON(w, http.StatusOK, order)
}
