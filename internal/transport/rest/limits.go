package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/promptmixer/promptmixer-backend/internal/service/limits"
	"github.com/promptmixer/promptmixer-backend/pkg/ctxutil"
)

// limitsService defines the minimal interface needed by LimitsHandler.
type limitsService interface {
	GetSummary(ctx context.Context, userID int64) *limits.Summary
}

// LimitsHandler serves the usage summary endpoint.
type LimitsHandler struct {
	svc limitsService
	log *slog.Logger
}

// NewLimitsHandler creates a LimitsHandler.
func NewLimitsHandler(svc limitsService, logger *slog.Logger) *LimitsHandler {
	return &LimitsHandler{svc: svc, log: logger.With("handler", "limits")}
}

// Summary handles GET /limits.
func (h *LimitsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, "not authenticated")
		return
	}

	writeJSON(w, http.StatusOK, h.svc.GetSummary(r.Context(), userID))
}
