package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestVerifier(clientID string) *Verifier {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	v := NewVerifier(clientID, logger)
	v.httpClient = &http.Client{Timeout: 2 * time.Second}
	return v
}

func TestVerifier_Verify_IDToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id_token"); got != "test_id_token" {
			t.Errorf("id_token: got %q, want %q", got, "test_id_token")
		}

		resp := tokeninfoResponse{
			Subject:       "google_user_123",
			Audience:      "test_client_id",
			Email:         "user@example.com",
			EmailVerified: "true",
			Name:          "Test User",
			Picture:       "https://example.com/avatar.jpg",
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Fatal(err)
		}
	}))
	defer srv.Close()

	origTokeninfo := tokeninfoURL
	tokeninfoURL = srv.URL
	defer func() { tokeninfoURL = origTokeninfo }()

	v := newTestVerifier("test_client_id")

	identity, err := v.Verify(context.Background(), "test_id_token")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if identity.Subject != "google_user_123" {
		t.Errorf("Subject: got %q, want %q", identity.Subject, "google_user_123")
	}
	if identity.Email != "user@example.com" {
		t.Errorf("Email: got %q, want %q", identity.Email, "user@example.com")
	}
	if identity.Name == nil || *identity.Name != "Test User" {
		t.Errorf("Name: got %v, want %q", identity.Name, "Test User")
	}
	if identity.AvatarURL == nil || *identity.AvatarURL != "https://example.com/avatar.jpg" {
		t.Errorf("AvatarURL: got %v", identity.AvatarURL)
	}
}

func TestVerifier_Verify_AudienceMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := tokeninfoResponse{
			Subject:       "google_user_123",
			Audience:      "someone_else",
			Email:         "user@example.com",
			EmailVerified: "true",
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Fatal(err)
		}
	}))
	defer srv.Close()

	userinfoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer userinfoSrv.Close()

	origTokeninfo, origUserinfo := tokeninfoURL, userinfoURL
	tokeninfoURL, userinfoURL = srv.URL, userinfoSrv.URL
	defer func() { tokeninfoURL, userinfoURL = origTokeninfo, origUserinfo }()

	v := newTestVerifier("test_client_id")

	if _, err := v.Verify(context.Background(), "tok"); err == nil {
		t.Fatal("expected error for audience mismatch")
	}
}

func TestVerifier_Verify_AccessTokenFallback(t *testing.T) {
	tokeninfoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Access tokens are not ID tokens; tokeninfo rejects them.
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer tokeninfoSrv.Close()

	userinfoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test_access_token" {
			t.Errorf("Authorization: got %q, want %q", got, "Bearer test_access_token")
		}

		resp := userinfoResponse{
			ID:            "google_user_456",
			Email:         "access@example.com",
			VerifiedEmail: true,
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Fatal(err)
		}
	}))
	defer userinfoSrv.Close()

	origTokeninfo, origUserinfo := tokeninfoURL, userinfoURL
	tokeninfoURL, userinfoURL = tokeninfoSrv.URL, userinfoSrv.URL
	defer func() { tokeninfoURL, userinfoURL = origTokeninfo, origUserinfo }()

	v := newTestVerifier("")

	identity, err := v.Verify(context.Background(), "test_access_token")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if identity.Subject != "google_user_456" {
		t.Errorf("Subject: got %q, want %q", identity.Subject, "google_user_456")
	}
	if identity.Name != nil {
		t.Errorf("Name: got %v, want nil", identity.Name)
	}
}

func TestVerifier_Verify_EmailNotVerified(t *testing.T) {
	tokeninfoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := tokeninfoResponse{
			Subject:       "google_user_123",
			Email:         "user@example.com",
			EmailVerified: "false",
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Fatal(err)
		}
	}))
	defer tokeninfoSrv.Close()

	userinfoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer userinfoSrv.Close()

	origTokeninfo, origUserinfo := tokeninfoURL, userinfoURL
	tokeninfoURL, userinfoURL = tokeninfoSrv.URL, userinfoSrv.URL
	defer func() { tokeninfoURL, userinfoURL = origTokeninfo, origUserinfo }()

	v := newTestVerifier("")

	if _, err := v.Verify(context.Background(), "tok"); err == nil {
		t.Fatal("expected error for unverified email")
	}
}
