package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	cartservice "github.com/maricoIR/HengamGallery/internal/cart/service"
	"github.com/maricoIR/HengamGallery/internal/checkout"
	"github.com/maricoIR/HengamGallery/internal/identity"
)

type CheckoutHandler struct {
	checkout *checkout.Service
	cart     *cartservice.Service
	store    *identity.Store
}

func NewCheckoutHandler(svc *checkout.Service, cart *cartservice.Service, store *identity.Store) *CheckoutHandler {
	return &CheckoutHandler{checkout: svc, cart: cart, store: store}
}

type QuoteResponseDTO struct {
	TotalPrice   int64 `json:"total_price"`
	ShippingCost int64 `json:"shipping_cost"`
	FinalTotal   int64 `json:"final_total"`
}

// Quote returns the shipping charge and final total for the current cart.
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	total := h.cart.Snapshot().TotalPrice
	respondJSON(w, http.StatusOK, QuoteResponseDTO{
		TotalPrice:   total,
		ShippingCost: checkout.ShippingCost(total),
		FinalTotal:   checkout.FinalTotal(total),
	})
}

func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var form checkout.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Field errors come back keyed so the form can highlight them.
	if errs := checkout.Validate(form); len(errs) > 0 {
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "checkout form is invalid",
			Code:   "validation_failed",
			Fields: errs,
		})
		return
	}

	var userID int64
	if user := h.store.CurrentUser(); user != nil {
		userID = user.ID
	}

	order, err := h.checkout.PlaceOrder(r.Context(), userID, form)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			respondError(w, http.StatusBadRequest, "empty_cart", "cart is empty")
			return
		}
		log.Printf("failed to place order: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "could not place order")
		return
	}

	respondJSON(w, http.StatusCreated, order)
}
