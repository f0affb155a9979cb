package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/promptmixer/promptmixer-backend/internal/service/improver"
	"github.com/promptmixer/promptmixer-backend/pkg/ctxutil"
)

// improverService defines the minimal interface needed by ImproveHandler.
type improverService interface {
	Improve(ctx context.Context, input improver.Input) (string, error)
}

// ImproveHandler serves the prompt improvement endpoint.
type ImproveHandler struct {
	svc improverService
	log *slog.Logger
}

// NewImproveHandler creates an ImproveHandler.
func NewImproveHandler(svc improverService, logger *slog.Logger) *ImproveHandler {
	return &ImproveHandler{svc: svc, log: logger.With("handler", "improve")}
}

type improveRequest struct {
	Prompt      string  `json:"prompt"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

type improveResponse struct {
	ImprovedPrompt string `json:"improved_prompt"`
}

// Improve handles POST /prompts/improve. Works for anonymous callers;
// authenticated free-tier users are subject to the improvement quota.
func (h *ImproveHandler) Improve(w http.ResponseWriter, r *http.Request) {
	var req improveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	input := improver.Input{
		Prompt:      req.Prompt,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	}
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		input.UserID = &userID
	}

	improved, err := h.svc.Improve(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, improveResponse{ImprovedPrompt: improved})
}
