package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

// LoginPassword authenticates a user by email and password. Every failure
// mode collapses into domain.ErrUnauthorized so callers cannot distinguish
// an unknown email from a wrong password.
func (s *Service) LoginPassword(ctx context.Context, email, password string) (*Result, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "password login lookup failed", slog.String("error", err.Error()))
		}
		return nil, domain.ErrUnauthorized
	}

	if !user.IsActive || user.HashedPassword == nil {
		return nil, domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "password login", slog.Int64("user_id", user.ID))

	return &Result{AccessToken: token, User: user}, nil
}
