package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/promptmixer/promptmixer-backend/internal/auth"
	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

// LoginGoogle authenticates with a Google ID or access token. Users are
// matched by Google subject first, then by email (linking the Google
// identity to an existing local account); unknown users are registered.
func (s *Service) LoginGoogle(ctx context.Context, token string) (*Result, error) {
	identity, err := s.google.Verify(ctx, token)
	if err != nil {
		s.log.WarnContext(ctx, "google token verification failed", slog.String("error", err.Error()))
		return nil, domain.ErrUnauthorized
	}

	user, err := s.resolveUser(ctx, identity)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}

	accessToken, err := s.jwt.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "google login", slog.Int64("user_id", user.ID))

	return &Result{AccessToken: accessToken, User: user}, nil
}

// resolveUser finds or registers the account behind a Google identity.
func (s *Service) resolveUser(ctx context.Context, identity *auth.GoogleIdentity) (*domain.User, error) {
	user, err := s.users.GetByGoogleID(ctx, identity.Subject)
	if err == nil {
		return s.refreshProfile(ctx, user, identity)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup by google id: %w", err)
	}

	// Existing local account with the same email: link the Google identity.
	user, err = s.users.GetByEmail(ctx, identity.Email)
	if err == nil {
		linked, err := s.users.Update(ctx, user.ID, domain.UserUpdate{
			GoogleID:    &identity.Subject,
			DisplayName: identity.Name,
			PhotoURL:    identity.AvatarURL,
		})
		if err != nil {
			return nil, fmt.Errorf("link google identity: %w", err)
		}
		s.log.InfoContext(ctx, "linked google identity", slog.Int64("user_id", linked.ID))
		return linked, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup by email: %w", err)
	}

	displayName := identity.Email
	if identity.Name != nil {
		displayName = *identity.Name
	}

	created, err := s.users.Create(ctx, &domain.User{
		Email:         identity.Email,
		GoogleID:      &identity.Subject,
		DisplayName:   displayName,
		PhotoURL:      identity.AvatarURL,
		IsActive:      true,
		PaymentStatus: domain.PaymentStatusUnpaid,
	})
	if err != nil {
		return nil, fmt.Errorf("register google user: %w", err)
	}

	s.log.InfoContext(ctx, "registered google user", slog.Int64("user_id", created.ID))

	return created, nil
}

// refreshProfile propagates changed Google profile data to the stored user.
func (s *Service) refreshProfile(ctx context.Context, user *domain.User, identity *auth.GoogleIdentity) (*domain.User, error) {
	params := domain.UserUpdate{}
	changed := false

	if identity.Name != nil && *identity.Name != user.DisplayName {
		params.DisplayName = identity.Name
		changed = true
	}
	if identity.AvatarURL != nil && ptrStringNotEqual(identity.AvatarURL, user.PhotoURL) {
		params.PhotoURL = identity.AvatarURL
		changed = true
	}
	if !changed {
		return user, nil
	}

	updated, err := s.users.Update(ctx, user.ID, params)
	if err != nil {
		// Profile refresh is cosmetic; login still succeeds.
		s.log.WarnContext(ctx, "profile refresh failed", slog.String("error", err.Error()))
		return user, nil
	}
	return updated, nil
}

// ptrStringNotEqual compares *string with *string, treating nil as distinct from "".
func ptrStringNotEqual(a, b *string) bool {
	if a == nil && b == nil {
		return false
	}
	if a == nil || b == nil {
		return true
	}
	return *a != *b
}
