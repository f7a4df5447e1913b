package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Mykyta-G/Webbshop/internal/cart"
	"github.com/Mykyta-G/Webbshop/internal/checkout"
	"github.com/Mykyta-G/Webbshop/internal/domain"
)

type CheckoutHandler struct {
	ledger    *cart.Ledger
	assembler *checkout.Assembler
	publisher checkout.Publisher
	timeout   time.Duration
}

func NewCheckoutHandler(ledger *cart.Ledger, assembler *checkout.Assembler, publisher checkout.Publisher, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		ledger:    ledger,
		assembler: assembler,
		publisher: publisher,
		timeout:   timeout,
	}
}

// Submit snapshots the cart, assembles the order and hands it to the
// delivery channel. The cart is cleared only after successful delivery; a
// validation or delivery failure leaves it untouched so the user can retry.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	snapshot, err := h.ledger.Snapshot(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to read cart")
		return
	}

	payload, err := h.assembler.Assemble(snapshot, customer)
	if err != nil {
		var vErr *checkout.ValidationError
		if errors.As(err, &vErr) {
			respondError(w, http.StatusUnprocessableEntity, "validation_failed", vErr.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to assemble order")
		return
	}

	if err := h.publisher.Publish(ctx, payload); err != nil {
		log.Printf("order delivery failed (request %s): %v", getRequestID(r.Context()), err)
		respondError(w, http.StatusBadGateway, "delivery_failed", "order could not be delivered, cart preserved")
		return
	}

	if err := h.ledger.Clear(ctx); err != nil {
		// The order is delivered; a stale cart is recoverable by the user.
		log.Printf("failed to clear cart after checkout: %v", err)
	}

	respondJSON(w, http.StatusCreated, payload)
}
