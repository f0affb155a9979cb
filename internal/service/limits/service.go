// Package limits enforces the free tier quotas: a capped number of library
// items and prompt improvements per user. Paid users are unlimited.
//
// The limiter fails open: when usage cannot be determined the operation is
// allowed rather than blocked on an internal error.
package limits

import (
	"context"
	"log/slog"

	"github.com/promptmixer/promptmixer-backend/internal/config"
	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the limiter.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// libraryCounter counts a user's saved library items.
type libraryCounter interface {
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
}

// improvementCounter counts a user's recorded prompt improvements.
type improvementCounter interface {
	CountByUser(ctx context.Context, userID int64) (int, error)
}

// Unlimited marks a quota with no remaining cap in Summary payloads.
const Unlimited = -1

// Summary is the usage document returned to the extension. Field names are
// part of the wire contract.
type Summary struct {
	IsPaidUser                  bool `json:"isPaidUser"`
	PromptsCount                int  `json:"promptsCount"`
	ImprovementsCount           int  `json:"improvementsCount"`
	MaxFreePrompts              int  `json:"maxFreePrompts"`
	MaxFreeImprovements         int  `json:"maxFreeImprovements"`
	PromptsLeft                 int  `json:"promptsLeft"`
	ImprovementsLeft            int  `json:"improvementsLeft"`
	HasReachedPromptsLimit      bool `json:"hasReachedPromptsLimit"`
	HasReachedImprovementsLimit bool `json:"hasReachedImprovementsLimit"`
}

// Service implements quota checks and the usage summary.
type Service struct {
	log          *slog.Logger
	users        userRepo
	library      libraryCounter
	improvements improvementCounter
	cfg          config.LimitsConfig
}

// NewService creates a new limits service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	library libraryCounter,
	improvements improvementCounter,
	cfg config.LimitsConfig,
) *Service {
	return &Service{
		log:          logger.With("service", "limits"),
		users:        users,
		library:      library,
		improvements: improvements,
		cfg:          cfg,
	}
}

// PromptLimitReached reports whether the user may not save another library
// item. Unknown users and internal errors allow the operation.
func (s *Service) PromptLimitReached(ctx context.Context, userID int64) bool {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "prompt limit check failed open",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return false
	}
	if user.IsPaid() {
		return false
	}

	count, err := s.library.CountByOwner(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "prompt limit check failed open",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return false
	}

	return count >= s.cfg.MaxFreePrompts
}

// ImprovementLimitReached reports whether the user may not run another
// improvement. Unknown users and internal errors allow the operation.
func (s *Service) ImprovementLimitReached(ctx context.Context, userID int64) bool {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "improvement limit check failed open",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return false
	}
	if user.IsPaid() {
		return false
	}

	count, err := s.improvements.CountByUser(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "improvement limit check failed open",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return false
	}

	return count >= s.cfg.MaxFreeImprovements
}

// GetSummary returns the user's current usage against their limits. Errors
// degrade to an empty free tier summary instead of failing the request.
func (s *Service) GetSummary(ctx context.Context, userID int64) *Summary {
	summary := &Summary{
		MaxFreePrompts:      s.cfg.MaxFreePrompts,
		MaxFreeImprovements: s.cfg.MaxFreeImprovements,
		PromptsLeft:         s.cfg.MaxFreePrompts,
		ImprovementsLeft:    s.cfg.MaxFreeImprovements,
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "usage summary degraded",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return summary
	}
	summary.IsPaidUser = user.IsPaid()

	if summary.PromptsCount, err = s.library.CountByOwner(ctx, userID); err != nil {
		s.log.WarnContext(ctx, "usage summary degraded",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return summary
	}
	if summary.ImprovementsCount, err = s.improvements.CountByUser(ctx, userID); err != nil {
		s.log.WarnContext(ctx, "usage summary degraded",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return summary
	}

	if summary.IsPaidUser {
		summary.PromptsLeft = Unlimited
		summary.ImprovementsLeft = Unlimited
	} else {
		summary.PromptsLeft = max(0, s.cfg.MaxFreePrompts-summary.PromptsCount)
		summary.ImprovementsLeft = max(0, s.cfg.MaxFreeImprovements-summary.ImprovementsCount)
		summary.HasReachedPromptsLimit = summary.PromptsCount >= s.cfg.MaxFreePrompts
		summary.HasReachedImprovementsLimit = summary.ImprovementsCount >= s.cfg.MaxFreeImprovements
	}

	return summary
}
