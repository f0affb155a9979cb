package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
	"github.com/promptmixer/promptmixer-backend/internal/service/user"
	"github.com/promptmixer/promptmixer-backend/pkg/ctxutil"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, input user.UpdateProfileInput) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]domain.User, int, error)
	SetPaymentStatus(ctx context.Context, userID int64, status domain.PaymentStatus) (*domain.User, error)
}

// UserHandler serves user profile and admin endpoints.
type UserHandler struct {
	svc    userService
	admins map[string]struct{}
	log    *slog.Logger
}

// NewUserHandler creates a UserHandler. admins is the lowercased email
// allowlist for the admin endpoints.
func NewUserHandler(svc userService, admins map[string]struct{}, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		admins: admins,
		log:    logger.With("handler", "users"),
	}
}

type userResponse struct {
	ID            int64      `json:"id"`
	Email         string     `json:"email"`
	DisplayName   string     `json:"display_name"`
	GoogleID      *string    `json:"google_id"`
	PhotoURL      *string    `json:"photo_url"`
	IsActive      bool       `json:"is_active"`
	PaymentStatus string     `json:"payment_status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type updateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	PhotoURL    *string `json:"photo_url"`
	Password    *string `json:"password"`
}

type userListResponse struct {
	Items []userResponse `json:"items"`
	Total int            `json:"total"`
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, "not authenticated")
		return
	}

	u, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateMe handles PUT /users/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, "not authenticated")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), userID, user.UpdateProfileInput{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Password:    req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// List handles GET /users (admin only).
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	skip, limit, err := pagination(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	users, total, err := h.svc.List(r.Context(), skip, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]userResponse, 0, len(users))
	for i := range users {
		items = append(items, toUserResponse(&users[i]))
	}

	writeJSON(w, http.StatusOK, userListResponse{Items: items, Total: total})
}

// SetPaymentStatus handles PUT /users/{id}/payment-status (admin only).
func (h *UserHandler) SetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req paymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	u, err := h.svc.SetPaymentStatus(r.Context(), id, domain.PaymentStatus(req.PaymentStatus))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// requireAdmin resolves the caller and checks the email allowlist.
func (h *UserHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeUnauthorized(w, "not authenticated")
		return false
	}

	u, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return false
	}

	if _, ok := h.admins[strings.ToLower(u.Email)]; !ok {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:            u.ID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		GoogleID:      u.GoogleID,
		PhotoURL:      u.PhotoURL,
		IsActive:      u.IsActive,
		PaymentStatus: u.PaymentStatus.String(),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
