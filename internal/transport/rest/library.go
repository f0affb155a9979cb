package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
	"github.com/promptmixer/promptmixer-backend/internal/service/library"
	"github.com/promptmixer/promptmixer-backend/pkg/ctxutil"
)

// libraryService defines the minimal interface needed by LibraryHandler.
type libraryService interface {
	List(ctx context.Context, ownerID int64, skip, limit int) ([]domain.LibraryItem, int, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.LibraryItem, error)
	Create(ctx context.Context, ownerID int64, input library.CreateInput) (*domain.LibraryItem, error)
	Update(ctx context.Context, id, ownerID int64, input library.UpdateInput) (*domain.LibraryItem, error)
	Delete(ctx context.Context, id, ownerID int64) error
	CreateFromHistory(ctx context.Context, historyID, ownerID int64) (*domain.LibraryItem, error)
}

// LibraryHandler serves personal prompt library endpoints.
type LibraryHandler struct {
	svc libraryService
	log *slog.Logger
}

// NewLibraryHandler creates a LibraryHandler.
func NewLibraryHandler(svc libraryService, logger *slog.Logger) *LibraryHandler {
	return &LibraryHandler{svc: svc, log: logger.With("handler", "library")}
}

type libraryItemResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Content     string            `json:"content"`
	Variables   []domain.Variable `json:"variables"`
	IconID      *string           `json:"icon_id"`
	ColorID     *string           `json:"color_id"`
	UserID      int64             `json:"user_id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at"`
}

type libraryListResponse struct {
	Items []libraryItemResponse `json:"items"`
	Total int                   `json:"total"`
}

// createLibraryRequest accepts both snake_case and camelCase icon/color ids;
// the extension frontend sends camelCase.
type createLibraryRequest struct {
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Content     string            `json:"content"`
	Variables   []domain.Variable `json:"variables"`
	IconID      *string           `json:"icon_id"`
	ColorID     *string           `json:"color_id"`
	IconIDAlt   *string           `json:"iconId"`
	ColorIDAlt  *string           `json:"colorId"`
}

type updateLibraryRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Content     *string           `json:"content"`
	Variables   []domain.Variable `json:"variables"`
	IconID      *string           `json:"icon_id"`
	ColorID     *string           `json:"color_id"`
	IconIDAlt   *string           `json:"iconId"`
	ColorIDAlt  *string           `json:"colorId"`
}

// List handles GET /library.
func (h *LibraryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, "not authenticated")
		return
	}

	skip, limit, err := pagination(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, total, err := h.svc.List(r.Context(), userID, skip, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]libraryItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toLibraryResponse(&items[i]))
	}

	writeJSON(w, http.StatusOK, libraryListResponse{Items: out, Total: total})
}

// Get handles GET /library/{id}.
func (h *LibraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, "not authenticated")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.Get(r.Context(), id, userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLibraryResponse(item))
}

// Create handles POST /library.
func (h *LibraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, "not authenticated")
		return
	}

	var req createLibraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	item, err := h.svc.Create(r.Context(), userID, library.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Variables:   req.Variables,
		IconID:      coalesce(req.IconID, req.IconIDAlt),
		ColorID:     coalesce(req.ColorID, req.ColorIDAlt),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLibraryResponse(item))
}

// Update handles PUT /library/{id}.
func (h *LibraryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, "not authenticated")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateLibraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	item, err := h.svc.Update(r.Context(), id, userID, library.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Variables:   req.Variables,
		IconID:      coalesce(req.IconID, req.IconIDAlt),
		ColorID:     coalesce(req.ColorID, req.ColorIDAlt),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLibraryResponse(item))
}

// Delete handles DELETE /library/{id}.
func (h *LibraryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, "not authenticated")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id, userID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Library item deleted successfully"})
}

// CreateFromHistory handles POST /library/from-history/{history_id}.
func (h *LibraryHandler) CreateFromHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, "not authenticated")
		return
	}

	historyID, err := pathID(r, "history_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.CreateFromHistory(r.Context(), historyID, userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLibraryResponse(item))
}

func coalesce(a, b *string) *string {
	if a != nil {
		return a
	}
	return b
}

func toLibraryResponse(item *domain.LibraryItem) libraryItemResponse {
	return libraryItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Content:     item.Content,
		Variables:   item.Variables,
		IconID:      item.IconID,
		ColorID:     item.ColorID,
		UserID:      item.UserID,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
