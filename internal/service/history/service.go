// Package history exposes the prompt improvement log. Entries are scoped
// to their owner; anonymous callers see only anonymous entries.
package history

import (
	"context"
	"log/slog"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

// historyRepo defines the repository interface needed by the history service.
type historyRepo interface {
	GetByID(ctx context.Context, id int64, ownerID *int64) (*domain.HistoryEntry, error)
	ListByOwner(ctx context.Context, ownerID *int64, limit, offset int) ([]domain.HistoryEntry, error)
	CountByOwner(ctx context.Context, ownerID *int64) (int, error)
}

// Service implements history read operations.
type Service struct {
	log     *slog.Logger
	entries historyRepo
}

// NewService creates a new history service instance.
func NewService(logger *slog.Logger, entries historyRepo) *Service {
	return &Service{
		log:     logger.With("service", "history"),
		entries: entries,
	}
}

// List returns a page of history entries, newest first, with the total
// count for the owner.
func (s *Service) List(ctx context.Context, ownerID *int64, skip, limit int) ([]domain.HistoryEntry, int, error) {
	if err := domain.ValidatePage(skip, limit); err != nil {
		return nil, 0, err
	}

	total, err := s.entries.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.entries.ListByOwner(ctx, ownerID, limit, skip)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Get returns one history entry visible to the owner.
func (s *Service) Get(ctx context.Context, id int64, ownerID *int64) (*domain.HistoryEntry, error) {
	return s.entries.GetByID(ctx, id, ownerID)
}
