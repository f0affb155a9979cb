// Package prompt manages sharable prompts with tags, separate from the
// improvement workflow and the personal library.
package prompt

import (
	"context"
	"log/slog"
	"strings"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

// promptRepo defines the repository interface needed by the prompt service.
type promptRepo interface {
	Create(ctx context.Context, p *domain.Prompt) (*domain.Prompt, error)
	GetByID(ctx context.Context, id, userID int64) (*domain.Prompt, error)
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Prompt, error)
	ListShared(ctx context.Context, limit, offset int) ([]domain.Prompt, error)
	Update(ctx context.Context, id, ownerID int64, params domain.PromptUpdate) (*domain.Prompt, error)
	Delete(ctx context.Context, id, ownerID int64) error
	SetTags(ctx context.Context, promptID int64, names []string) ([]domain.Tag, error)
}

// txManager defines the transaction manager interface.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreateInput describes a new prompt with optional tags.
type CreateInput struct {
	Title       string
	Description *string
	Content     string
	IsShared    bool
	Metadata    map[string]any
	Tags        []string
}

// Service implements prompt operations.
type Service struct {
	log     *slog.Logger
	prompts promptRepo
	tx      txManager
}

// NewService creates a new prompt service instance.
func NewService(logger *slog.Logger, prompts promptRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "prompt"),
		prompts: prompts,
		tx:      tx,
	}
}

// Create stores a prompt and its tags in one transaction.
func (s *Service) Create(ctx context.Context, ownerID int64, input CreateInput) (*domain.Prompt, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.NewValidationError("title", "must not be empty")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.NewValidationError("content", "must not be empty")
	}

	var created *domain.Prompt
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.prompts.Create(ctx, &domain.Prompt{
			Title:       input.Title,
			Description: input.Description,
			Content:     input.Content,
			IsShared:    input.IsShared,
			Metadata:    input.Metadata,
			OwnerID:     ownerID,
		})
		if err != nil {
			return err
		}
		if len(input.Tags) > 0 {
			if p.Tags, err = s.prompts.SetTags(ctx, p.ID, normalizeTags(input.Tags)); err != nil {
				return err
			}
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "prompt created",
		slog.Int64("prompt_id", created.ID), slog.Int64("user_id", ownerID))

	return created, nil
}

// Get returns a prompt the user may see: their own or a shared one.
func (s *Service) Get(ctx context.Context, id, userID int64) (*domain.Prompt, error) {
	return s.prompts.GetByID(ctx, id, userID)
}

// List returns the user's own prompts.
func (s *Service) List(ctx context.Context, ownerID int64, skip, limit int) ([]domain.Prompt, error) {
	if err := domain.ValidatePage(skip, limit); err != nil {
		return nil, err
	}
	return s.prompts.ListByOwner(ctx, ownerID, limit, skip)
}

// ListShared returns prompts shared by any user.
func (s *Service) ListShared(ctx context.Context, skip, limit int) ([]domain.Prompt, error) {
	if err := domain.ValidatePage(skip, limit); err != nil {
		return nil, err
	}
	return s.prompts.ListShared(ctx, limit, skip)
}

// Update applies a partial update, replacing tags when a tag list is given.
func (s *Service) Update(ctx context.Context, id, ownerID int64, params domain.PromptUpdate) (*domain.Prompt, error) {
	if params.Content != nil && strings.TrimSpace(*params.Content) == "" {
		return nil, domain.NewValidationError("content", "must not be empty")
	}
	if params.Title != nil && strings.TrimSpace(*params.Title) == "" {
		return nil, domain.NewValidationError("title", "must not be empty")
	}

	var updated *domain.Prompt
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.prompts.Update(ctx, id, ownerID, params)
		if err != nil {
			return err
		}
		if params.Tags != nil {
			if p.Tags, err = s.prompts.SetTags(ctx, p.ID, normalizeTags(params.Tags)); err != nil {
				return err
			}
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a prompt owned by the user.
func (s *Service) Delete(ctx context.Context, id, ownerID int64) error {
	return s.prompts.Delete(ctx, id, ownerID)
}

// normalizeTags trims, lowercases and dedupes tag names, keeping order.
func normalizeTags(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		n := strings.ToLower(strings.TrimSpace(name))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
