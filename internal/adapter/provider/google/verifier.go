// Package google verifies Google sign-in tokens sent by the browser
// extension and resolves them into a user identity.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/promptmixer/promptmixer-backend/internal/auth"
)

var (
	// Made variables for testing purposes
	tokeninfoURL = "https://oauth2.googleapis.com/tokeninfo"
	userinfoURL  = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// Verifier validates Google ID tokens and OAuth access tokens. The
// extension may send either kind; ID tokens are checked first, access
// tokens are resolved through the userinfo endpoint as a fallback.
type Verifier struct {
	clientID   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewVerifier creates a Google token verifier. clientID is the OAuth
// client the ID token audience must match; empty disables the check.
func NewVerifier(clientID string, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID:   clientID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "google_oauth"),
	}
}

// tokeninfoResponse represents the response from Google's tokeninfo endpoint.
type tokeninfoResponse struct {
	Subject       string `json:"sub"`
	Audience      string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// userinfoResponse represents the response from Google's userinfo endpoint.
type userinfoResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Verify resolves a Google token to an identity. The token is treated as
// an ID token first; when tokeninfo rejects it, it is retried as an OAuth
// access token against userinfo.
func (v *Verifier) Verify(ctx context.Context, token string) (*auth.GoogleIdentity, error) {
	identity, err := v.verifyIDToken(ctx, token)
	if err == nil {
		return identity, nil
	}
	v.log.DebugContext(ctx, "google id token check failed, trying access token", slog.String("error", err.Error()))

	return v.verifyAccessToken(ctx, token)
}

func (v *Verifier) verifyIDToken(ctx context.Context, token string) (*auth.GoogleIdentity, error) {
	endpoint := tokeninfoURL + "?id_token=" + url.QueryEscape(token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokeninfo request: %w", err)
	}

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "google tokeninfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("oauth: google unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oauth: invalid id token")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("oauth: failed to read tokeninfo response")
	}

	var info tokeninfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("oauth: invalid tokeninfo response")
	}
	if info.Subject == "" || info.Email == "" {
		return nil, fmt.Errorf("oauth: invalid tokeninfo response")
	}
	if v.clientID != "" && info.Audience != v.clientID {
		v.log.WarnContext(ctx, "google id token audience mismatch")
		return nil, fmt.Errorf("oauth: token issued for another client")
	}
	if info.EmailVerified != "true" {
		return nil, fmt.Errorf("oauth: email not verified")
	}

	return newIdentity(info.Subject, info.Email, info.Name, info.Picture), nil
}

func (v *Verifier) verifyAccessToken(ctx context.Context, token string) (*auth.GoogleIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "google userinfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("oauth: google unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "google userinfo failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("oauth: invalid google token")
	}

	var info userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("oauth: invalid userinfo response")
	}
	if info.ID == "" || info.Email == "" {
		return nil, fmt.Errorf("oauth: invalid userinfo response")
	}
	if !info.VerifiedEmail {
		return nil, fmt.Errorf("oauth: email not verified")
	}

	return newIdentity(info.ID, info.Email, info.Name, info.Picture), nil
}

func newIdentity(subject, email, name, picture string) *auth.GoogleIdentity {
	identity := &auth.GoogleIdentity{
		Subject: subject,
		Email:   email,
	}
	if name != "" {
		identity.Name = &name
	}
	if picture != "" {
		identity.AvatarURL = &picture
	}
	return identity
}

// doWithRetry executes an HTTP request, retrying once on 5xx or network
// errors with a 500ms backoff.
func (v *Verifier) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil || (resp != nil && resp.StatusCode >= 500) {
		if resp != nil {
			resp.Body.Close()
		}

		select {
		case <-time.After(500 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		resp, err = v.httpClient.Do(req)
	}

	return resp, err
}
