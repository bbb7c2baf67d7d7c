package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fjod/go_storefront/internal/domain"
)

type OrderFormDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// POST /api/v1/checkout/open
func (h *Handler) OpenCheckout(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.OpenCheckout)
}

// POST /api/v1/checkout/close
func (h *Handler) CloseCheckout(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.CloseCheckout)
}

// PATCH /api/v1/checkout/form
func (h *Handler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	state, err := h.svc.UpdateForm(ctx, getSessionIDFromContext(r.Context()), fields)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toStateDTO(state))
}

// PUT /api/v1/checkout/form
func (h *Handler) ReplaceForm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req OrderFormDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	state, err := h.svc.SetForm(ctx, getSessionIDFromContext(r.Context()), domain.OrderForm(req))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toStateDTO(state))
}

// POST /api/v1/checkout
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req OrderFormDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	form := domain.OrderForm{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
	}
	if missing := form.MissingFields(); len(missing) > 0 {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "required fields are empty",
			Code:    "missing_fields",
			Details: strings.Join(missing, ","),
		})
		return
	}

	state, receipt, err := h.svc.SubmitOrder(ctx, getSessionIDFromContext(r.Context()), form)
	if errors.Is(err, domain.ErrEmptyCart) {
		respondJSON(w, http.StatusUnprocessableEntity, OrderResponseDTO{
			State: toStateDTO(state),
		})
		return
	}
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, OrderResponseDTO{
		Order: toReceiptDTO(receipt),
		State: toStateDTO(state),
	})
}
