// Package auth implements login flows: local email/password and Google
// token sign-in.
package auth

import (
	"context"
	"log/slog"

	"github.com/promptmixer/promptmixer-backend/internal/auth"
	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id int64, params domain.UserUpdate) (*domain.User, error)
}

// googleVerifier defines the Google token verification interface.
type googleVerifier interface {
	Verify(ctx context.Context, token string) (*auth.GoogleIdentity, error)
}

// tokenIssuer defines the JWT issuing interface needed by the auth service.
type tokenIssuer interface {
	Issue(userID int64) (string, error)
}

// Service implements authentication operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	google googleVerifier
	jwt    tokenIssuer
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, google googleVerifier, jwt tokenIssuer) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		google: google,
		jwt:    jwt,
	}
}
