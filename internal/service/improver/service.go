// Package improver runs the prompt improvement workflow: quota check, LLM
// rewrite, history record.
package improver

import (
	"context"
	"log/slog"
	"strings"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

// promptImprover defines the LLM rewriting interface.
type promptImprover interface {
	ImprovePrompt(ctx context.Context, originalPrompt string) (string, error)
}

// historyRepo defines the history persistence interface needed here.
type historyRepo interface {
	Create(ctx context.Context, e *domain.HistoryEntry) (*domain.HistoryEntry, error)
}

// limiter defines the quota check interface.
type limiter interface {
	ImprovementLimitReached(ctx context.Context, userID int64) bool
}

// Input describes one improvement request. UserID is nil for anonymous
// callers, who are not quota checked.
type Input struct {
	Prompt      string
	Title       *string
	Description *string
	URL         *string
	UserID      *int64
}

// Service implements the improvement workflow.
type Service struct {
	log     *slog.Logger
	llm     promptImprover
	history historyRepo
	limits  limiter
}

// NewService creates a new improver service instance.
func NewService(logger *slog.Logger, llm promptImprover, history historyRepo, limits limiter) *Service {
	return &Service{
		log:     logger.With("service", "improver"),
		llm:     llm,
		history: history,
		limits:  limits,
	}
}

// Improve rewrites the prompt and records the result. History persistence
// is best effort: a failed insert is logged and the improved prompt is
// still returned.
func (s *Service) Improve(ctx context.Context, input Input) (string, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return "", domain.NewValidationError("prompt", "must not be empty")
	}

	if input.UserID != nil && s.limits.ImprovementLimitReached(ctx, *input.UserID) {
		return "", domain.ErrQuotaExceeded
	}

	improved, err := s.llm.ImprovePrompt(ctx, input.Prompt)
	if err != nil {
		return "", err
	}

	if _, err := s.history.Create(ctx, &domain.HistoryEntry{
		Title:          input.Title,
		Description:    input.Description,
		OriginalPrompt: input.Prompt,
		ImprovedPrompt: improved,
		URL:            input.URL,
		UserID:         input.UserID,
	}); err != nil {
		s.log.ErrorContext(ctx, "failed to save history entry", slog.String("error", err.Error()))
	}

	return improved, nil
}
