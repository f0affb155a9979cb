package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/promptmixer/promptmixer-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	LoginPassword(ctx context.Context, email, password string) (*auth.Result, error)
	LoginGoogle(ctx context.Context, token string) (*auth.Result, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type googleAuthRequest struct {
	Token string `json:"token"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type googleAuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

// Login handles POST /auth/login. The body is form-encoded with username
// and password fields, the OAuth2 password grant shape the extension sends.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid form body")
		return
	}

	email := r.PostForm.Get("username")
	password := r.PostForm.Get("password")

	result, err := h.svc.LoginPassword(r.Context(), email, password)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
	})
}

// LoginGoogle handles POST /auth/google. The body carries a Google ID token
// or OAuth access token obtained by the extension.
func (h *AuthHandler) LoginGoogle(w http.ResponseWriter, r *http.Request) {
	var req googleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	result, err := h.svc.LoginGoogle(r.Context(), req.Token)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, googleAuthResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		User:        toUserResponse(result.User),
	})
}
