package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fjod/go_storefront/internal/domain"
)

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

// Quantity <= 0 removes the item; there is no upper bound.
type UpdateQuantityRequestDTO struct {
	Quantity *int `json:"quantity"`
}

// POST /api/v1/cart/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	state, err := h.svc.AddToCart(ctx, getSessionIDFromContext(r.Context()), req.ProductID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toStateDTO(state))
}

// PUT /api/v1/cart/items/{product_id}
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity == nil {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity is required")
		return
	}

	state, err := h.svc.UpdateQuantity(ctx, getSessionIDFromContext(r.Context()), productID, *req.Quantity)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toStateDTO(state))
}

// DELETE /api/v1/cart/items/{product_id}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	state, err := h.svc.RemoveFromCart(ctx, getSessionIDFromContext(r.Context()), productID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toStateDTO(state))
}

// POST /api/v1/cart/open
func (h *Handler) OpenCart(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.OpenCart)
}

// POST /api/v1/cart/close
func (h *Handler) CloseCart(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.CloseCart)
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) (*domain.State, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	state, err := fn(ctx, getSessionIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toStateDTO(state))
}
