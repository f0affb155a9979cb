package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
	"github.com/promptmixer/promptmixer-backend/pkg/ctxutil"
)

// historyService defines the minimal interface needed by HistoryHandler.
type historyService interface {
	List(ctx context.Context, ownerID *int64, skip, limit int) ([]domain.HistoryEntry, int, error)
	Get(ctx context.Context, id int64, ownerID *int64) (*domain.HistoryEntry, error)
}

// HistoryHandler serves improvement history endpoints.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

type historyEntryResponse struct {
	ID             int64     `json:"id"`
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	OriginalPrompt string    `json:"original_prompt"`
	ImprovedPrompt string    `json:"improved_prompt"`
	URL            *string   `json:"url"`
	UserID         *int64    `json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type historyListResponse struct {
	Items []historyEntryResponse `json:"items"`
	Total int                    `json:"total"`
}

// List handles GET /prompts/history.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := pagination(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, total, err := h.svc.List(r.Context(), ownerFromCtx(r), skip, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]historyEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, toHistoryResponse(&entries[i]))
	}

	writeJSON(w, http.StatusOK, historyListResponse{Items: items, Total: total})
}

// Get handles GET /prompts/history/{id}.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Get(r.Context(), id, ownerFromCtx(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryResponse(entry))
}

// ownerFromCtx returns the authenticated user id, or nil for anonymous
// callers. Anonymous history access is scoped to unowned rows.
func ownerFromCtx(r *http.Request) *int64 {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return &userID
	}
	return nil
}

func toHistoryResponse(e *domain.HistoryEntry) historyEntryResponse {
	return historyEntryResponse{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		OriginalPrompt: e.OriginalPrompt,
		ImprovedPrompt: e.ImprovedPrompt,
		URL:            e.URL,
		UserID:         e.UserID,
		CreatedAt:      e.CreatedAt,
	}
}
