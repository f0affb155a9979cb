package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/promptmixer/promptmixer-backend/internal/service/billing"
)

// billingService defines the minimal interface needed by WebhookHandler.
type billingService interface {
	HandleEvent(ctx context.Context, payload []byte, sigHeader string) error
}

// WebhookHandler serves the Stripe webhook endpoint.
type WebhookHandler struct {
	svc billingService
	log *slog.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(svc billingService, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{svc: svc, log: logger.With("handler", "webhook")}
}

// maxWebhookBody bounds the webhook payload read.
const maxWebhookBody = 1 << 20

// HandleStripe handles POST /stripe/webhook. The raw body is needed for
// signature verification, so no JSON decoding happens before HandleEvent.
func (h *WebhookHandler) HandleStripe(w http.ResponseWriter, r *http.Request) {
	sigHeader := r.Header.Get("Stripe-Signature")
	if sigHeader == "" {
		writeError(w, http.StatusBadRequest, "missing stripe-signature header")
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := h.svc.HandleEvent(r.Context(), payload, sigHeader); err != nil {
		if errors.Is(err, billing.ErrInvalidSignature) {
			writeError(w, http.StatusBadRequest, "invalid signature")
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
