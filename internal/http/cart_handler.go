package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Mykyta-G/Webbshop/internal/cart"
	"github.com/Mykyta-G/Webbshop/internal/domain"
)

type CartHandler struct {
	ledger  *cart.Ledger
	timeout time.Duration
}

func NewCartHandler(ledger *cart.Ledger, timeout time.Duration) *CartHandler {
	return &CartHandler{
		ledger:  ledger,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	// ID accepts both a JSON number (catalog API) and a JSON string (markup
	// attributes); both are normalized to the same canonical key.
	ID    any     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type AdjustQuantityRequestDTO struct {
	Delta int `json:"delta"`
}

type CartResponseDTO struct {
	Items           []domain.CartLine `json:"items"`
	Totals          domain.CartTotals `json:"totals"`
	SubtotalDisplay string            `json:"subtotalDisplay"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()
	h.respondCart(ctx, w, http.StatusOK)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	id, ok := normalizeJSONID(req.ID)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "id must be a string or a number")
		return
	}
	if req.Price < 0 {
		respondError(w, http.StatusBadRequest, "invalid_price", "price must not be negative")
		return
	}

	if err := h.ledger.Add(ctx, id, req.Name, req.Price); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update cart")
		return
	}

	h.respondCart(ctx, w, http.StatusCreated)
}

func (h *CartHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := chi.URLParam(r, "id")

	var req AdjustQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Delta == 0 {
		respondError(w, http.StatusBadRequest, "invalid_delta", "delta must not be zero")
		return
	}

	if err := h.ledger.AdjustQuantity(ctx, id, req.Delta); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update cart")
		return
	}

	h.respondCart(ctx, w, http.StatusOK)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.ledger.Remove(ctx, chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update cart")
		return
	}

	h.respondCart(ctx, w, http.StatusOK)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.ledger.Clear(ctx); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) respondCart(ctx context.Context, w http.ResponseWriter, status int) {
	items, err := h.ledger.Snapshot(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to read cart")
		return
	}
	totals, err := h.ledger.Totals(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to read cart")
		return
	}
	if items == nil {
		items = []domain.CartLine{}
	}

	respondJSON(w, status, CartResponseDTO{
		Items:           items,
		Totals:          totals,
		SubtotalDisplay: domain.FormatPrice(totals.Subtotal),
	})
}

func normalizeJSONID(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		if cart.NormalizeID(id) == "" {
			return "", false
		}
		return id, true
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true
	default:
		return "", false
	}
}
