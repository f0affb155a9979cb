// Package user implements profile and user administration operations.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the user service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, params domain.UserUpdate) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
}

// UpdateProfileInput is a partial profile update. A supplied Password is
// re-hashed before it is stored.
type UpdateProfileInput struct {
	DisplayName *string
	PhotoURL    *string
	Password    *string
}

// Service implements user operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile applies a partial profile update for the given user.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*domain.User, error) {
	params := domain.UserUpdate{
		DisplayName: input.DisplayName,
		PhotoURL:    input.PhotoURL,
	}

	if input.Password != nil {
		if len(*input.Password) < 8 {
			return nil, domain.NewValidationError("password", "must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hashed := string(hash)
		params.HashedPassword = &hashed
	}

	updated, err := s.users.Update(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "profile updated", slog.Int64("user_id", userID))

	return updated, nil
}

// List returns a page of users together with the total count.
func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.User, int, error) {
	if skip < 0 || limit < 1 || limit > 1000 {
		return nil, 0, domain.NewValidationError("limit", "must be between 1 and 1000")
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	users, err := s.users.List(ctx, limit, skip)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// SetPaymentStatus switches a user between the paid and free tiers.
func (s *Service) SetPaymentStatus(ctx context.Context, userID int64, status domain.PaymentStatus) (*domain.User, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("payment_status", "must be 'paid' or 'unpaid'")
	}

	updated, err := s.users.Update(ctx, userID, domain.UserUpdate{PaymentStatus: &status})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "payment status changed",
		slog.Int64("user_id", userID),
		slog.String("status", status.String()))

	return updated, nil
}
