package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
	"github.com/promptmixer/promptmixer-backend/internal/service/prompt"
	"github.com/promptmixer/promptmixer-backend/pkg/ctxutil"
)

// promptService defines the minimal interface needed by PromptHandler.
type promptService interface {
	Create(ctx context.Context, ownerID int64, input prompt.CreateInput) (*domain.Prompt, error)
	Get(ctx context.Context, id, userID int64) (*domain.Prompt, error)
	List(ctx context.Context, ownerID int64, skip, limit int) ([]domain.Prompt, error)
	ListShared(ctx context.Context, skip, limit int) ([]domain.Prompt, error)
	Update(ctx context.Context, id, ownerID int64, params domain.PromptUpdate) (*domain.Prompt, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

// PromptHandler serves the general prompt CRUD endpoints.
type PromptHandler struct {
	svc promptService
	log *slog.Logger
}

// NewPromptHandler creates a PromptHandler.
func NewPromptHandler(svc promptService, logger *slog.Logger) *PromptHandler {
	return &PromptHandler{svc: svc, log: logger.With("handler", "prompts")}
}

type promptResponse struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Content     string         `json:"content"`
	IsShared    bool           `json:"is_shared"`
	Metadata    map[string]any `json:"meta_data"`
	OwnerID     int64          `json:"owner_id"`
	Tags        []string       `json:"tags"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at"`
}

type createPromptRequest struct {
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Content     string         `json:"content"`
	IsShared    bool           `json:"is_shared"`
	Metadata    map[string]any `json:"meta_data"`
	Tags        []string       `json:"tags"`
}

type updatePromptRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Content     *string        `json:"content"`
	IsShared    *bool          `json:"is_shared"`
	Metadata    map[string]any `json:"meta_data"`
	Tags        []string       `json:"tags"`
}

// Create handles POST /prompts.
func (h *PromptHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, "not authenticated")
		return
	}

	var req createPromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	p, err := h.svc.Create(r.Context(), userID, prompt.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		IsShared:    req.IsShared,
		Metadata:    req.Metadata,
		Tags:        req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPromptResponse(p))
}

// Get handles GET /prompts/{id}. Shared prompts are visible to any
// authenticated user.
func (h *PromptHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	p, err := h.svc.Get(r.Context(), id, userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPromptResponse(p))
}

// List handles GET /prompts.
func (h *PromptHandler) List(w http.ResponseWriter, r *http.Request) {
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

	prompts, err := h.svc.List(r.Context(), userID, skip, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPromptResponses(prompts))
}

// ListShared handles GET /prompts/shared.
func (h *PromptHandler) ListShared(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := pagination(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	prompts, err := h.svc.ListShared(r.Context(), skip, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPromptResponses(prompts))
}

// Update handles PUT /prompts/{id}.
func (h *PromptHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req updatePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	p, err := h.svc.Update(r.Context(), id, userID, domain.PromptUpdate{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		IsShared:    req.IsShared,
		Metadata:    req.Metadata,
		Tags:        req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPromptResponse(p))
}

// Delete handles DELETE /prompts/{id}.
func (h *PromptHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, map[string]string{"message": "Prompt deleted successfully"})
}

func toPromptResponse(p *domain.Prompt) promptResponse {
	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, t.Name)
	}
	return promptResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
		IsShared:    p.IsShared,
		Metadata:    p.Metadata,
		OwnerID:     p.OwnerID,
		Tags:        tags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPromptResponses(prompts []domain.Prompt) []promptResponse {
	out := make([]promptResponse, 0, len(prompts))
	for i := range prompts {
		out = append(out, toPromptResponse(&prompts[i]))
	}
	return out
}
