// Package history implements the prompt history repository using PostgreSQL.
package history

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/promptmixer/promptmixer-backend/internal/adapter/postgres"
	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

const historyColumns = `id, title, description, original_prompt, improved_prompt, url, user_id, created_at`

const (
	createSQL = `
INSERT INTO prompt_history (title, description, original_prompt, improved_prompt, url, user_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + historyColumns

	getByIDSQL = `SELECT ` + historyColumns + ` FROM prompt_history WHERE id = $1`

	listByOwnerSQL = `
SELECT ` + historyColumns + `
FROM prompt_history
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

	listAnonymousSQL = `
SELECT ` + historyColumns + `
FROM prompt_history
WHERE user_id IS NULL
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`

	countByOwnerSQL   = `SELECT count(*) FROM prompt_history WHERE user_id = $1`
	countAnonymousSQL = `SELECT count(*) FROM prompt_history WHERE user_id IS NULL`
)

// Repo provides prompt history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a history entry and returns the persisted record.
func (r *Repo) Create(ctx context.Context, e *domain.HistoryEntry) (*domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanEntry(q.QueryRow(ctx, createSQL,
		e.Title, e.Description, e.OriginalPrompt, e.ImprovedPrompt, e.URL, e.UserID))
	if err != nil {
		return nil, postgres.MapError(err, "history entry", 0)
	}
	return created, nil
}

// GetByID returns a single history entry. A nil ownerID matches anonymous
// entries only; otherwise the entry must belong to the given user.
func (r *Repo) GetByID(ctx context.Context, id int64, ownerID *int64) (*domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "history entry", id)
	}
	if !sameOwner(e.UserID, ownerID) {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

// GetByIDAny returns a history entry regardless of owner. Copying an entry
// into the library reads the source this way.
func (r *Repo) GetByIDAny(ctx context.Context, id int64) (*domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "history entry", id)
	}
	return e, nil
}

// ListByOwner returns history entries newest first. A nil ownerID lists
// anonymous entries.
func (r *Repo) ListByOwner(ctx context.Context, ownerID *int64, limit, offset int) ([]domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		rows pgx.Rows
		err  error
	)
	if ownerID == nil {
		rows, err = q.Query(ctx, listAnonymousSQL, limit, offset)
	} else {
		rows, err = q.Query(ctx, listByOwnerSQL, *ownerID, limit, offset)
	}
	if err != nil {
		return nil, postgres.MapError(err, "history entry", 0)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, postgres.MapError(err, "history entry", 0)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "history entry", 0)
	}

	return entries, nil
}

// CountByOwner returns the number of history entries for the given owner.
// A nil ownerID counts anonymous entries.
func (r *Repo) CountByOwner(ctx context.Context, ownerID *int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	var err error
	if ownerID == nil {
		err = q.QueryRow(ctx, countAnonymousSQL).Scan(&total)
	} else {
		err = q.QueryRow(ctx, countByOwnerSQL, *ownerID).Scan(&total)
	}
	if err != nil {
		return 0, postgres.MapError(err, "history entry", 0)
	}
	return total, nil
}

// CountByUser returns the number of improvements recorded for a user. Used
// by the free tier limiter.
func (r *Repo) CountByUser(ctx context.Context, userID int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countByOwnerSQL, userID).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "history entry", 0)
	}
	return total, nil
}

func sameOwner(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func scanEntry(row pgx.Row) (*domain.HistoryEntry, error) {
	var e domain.HistoryEntry
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.OriginalPrompt,
		&e.ImprovedPrompt,
		&e.URL,
		&e.UserID,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
