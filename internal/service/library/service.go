// Package library manages a user's personal prompt library. Placeholder
// variables in the form {{name}} are extracted from item content and kept
// in sync as the content changes.
package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

const defaultTitle = "Untitled Prompt"

// libraryRepo defines the repository interface needed by the library service.
type libraryRepo interface {
	Create(ctx context.Context, item *domain.LibraryItem) (*domain.LibraryItem, error)
	GetByID(ctx context.Context, id, ownerID int64) (*domain.LibraryItem, error)
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.LibraryItem, error)
	Update(ctx context.Context, id, ownerID int64, params domain.LibraryItemUpdate) (*domain.LibraryItem, error)
	Delete(ctx context.Context, id, ownerID int64) error
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
}

// historySource reads improvement history entries when one is copied into
// the library. The source entry's owner is not checked, matching the
// product's share-by-id behavior.
type historySource interface {
	GetByIDAny(ctx context.Context, id int64) (*domain.HistoryEntry, error)
}

// limiter defines the quota check interface.
type limiter interface {
	PromptLimitReached(ctx context.Context, userID int64) bool
}

// CreateInput describes a new library item. When Variables is empty they
// are extracted from Content.
type CreateInput struct {
	Title       string
	Description *string
	Content     string
	Variables   []domain.Variable
	IconID      *string
	ColorID     *string
}

// UpdateInput is a partial item update. When Content changes and Variables
// is nil, variables are re-extracted with previously entered values kept.
type UpdateInput struct {
	Title       *string
	Description *string
	Content     *string
	Variables   []domain.Variable
	IconID      *string
	ColorID     *string
}

// Service implements library operations.
type Service struct {
	log     *slog.Logger
	items   libraryRepo
	history historySource
	limits  limiter
}

// NewService creates a new library service instance.
func NewService(logger *slog.Logger, items libraryRepo, history historySource, limits limiter) *Service {
	return &Service{
		log:     logger.With("service", "library"),
		items:   items,
		history: history,
		limits:  limits,
	}
}

// List returns a page of the user's library items with the total count.
func (s *Service) List(ctx context.Context, ownerID int64, skip, limit int) ([]domain.LibraryItem, int, error) {
	if err := domain.ValidatePage(skip, limit); err != nil {
		return nil, 0, err
	}

	total, err := s.items.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.items.ListByOwner(ctx, ownerID, limit, skip)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Get returns one library item owned by the user.
func (s *Service) Get(ctx context.Context, id, ownerID int64) (*domain.LibraryItem, error) {
	return s.items.GetByID(ctx, id, ownerID)
}

// Create saves a new library item, enforcing the free tier quota.
func (s *Service) Create(ctx context.Context, ownerID int64, input CreateInput) (*domain.LibraryItem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.NewValidationError("title", "must not be empty")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.NewValidationError("content", "must not be empty")
	}

	if s.limits.PromptLimitReached(ctx, ownerID) {
		return nil, domain.ErrQuotaExceeded
	}

	variables := input.Variables
	if len(variables) == 0 {
		variables = domain.ExtractVariables(input.Content, nil)
	}

	created, err := s.items.Create(ctx, &domain.LibraryItem{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		Variables:   variables,
		IconID:      input.IconID,
		ColorID:     input.ColorID,
		UserID:      ownerID,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "library item created",
		slog.Int64("item_id", created.ID), slog.Int64("user_id", ownerID))

	return created, nil
}

// Update applies a partial update to an item owned by the user.
func (s *Service) Update(ctx context.Context, id, ownerID int64, input UpdateInput) (*domain.LibraryItem, error) {
	params := domain.LibraryItemUpdate{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		Variables:   input.Variables,
		IconID:      input.IconID,
		ColorID:     input.ColorID,
	}

	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, domain.NewValidationError("content", "must not be empty")
		}
		if input.Variables == nil {
			existing, err := s.items.GetByID(ctx, id, ownerID)
			if err != nil {
				return nil, err
			}
			params.Variables = domain.ExtractVariables(*input.Content, existing.Variables)
		}
	}

	return s.items.Update(ctx, id, ownerID, params)
}

// Delete removes an item owned by the user.
func (s *Service) Delete(ctx context.Context, id, ownerID int64) error {
	if err := s.items.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "library item deleted",
		slog.Int64("item_id", id), slog.Int64("user_id", ownerID))

	return nil
}

// CreateFromHistory copies an improvement history entry into the user's
// library. The item's content is the improved prompt with its variables
// extracted; a missing title falls back to a default.
func (s *Service) CreateFromHistory(ctx context.Context, historyID, ownerID int64) (*domain.LibraryItem, error) {
	if s.limits.PromptLimitReached(ctx, ownerID) {
		return nil, domain.ErrQuotaExceeded
	}

	entry, err := s.history.GetByIDAny(ctx, historyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("load history entry: %w", err)
	}

	title := defaultTitle
	if entry.Title != nil && *entry.Title != "" {
		title = *entry.Title
	}

	created, err := s.items.Create(ctx, &domain.LibraryItem{
		Title:       title,
		Description: entry.Description,
		Content:     entry.ImprovedPrompt,
		Variables:   domain.ExtractVariables(entry.ImprovedPrompt, nil),
		UserID:      ownerID,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "library item created from history",
		slog.Int64("item_id", created.ID),
		slog.Int64("history_id", historyID),
		slog.Int64("user_id", ownerID))

	return created, nil
}
