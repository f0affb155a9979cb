// Package library implements the personal prompt library repository using
// PostgreSQL. Variables are stored as a JSONB array alongside the content.
package library

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/promptmixer/promptmixer-backend/internal/adapter/postgres"
	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

const itemColumns = `id, title, description, content, variables, icon_id, color_id, user_id, created_at, updated_at`

const (
	createSQL = `
INSERT INTO user_library (title, description, content, variables, icon_id, color_id, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + itemColumns

	getByIDSQL = `SELECT ` + itemColumns + ` FROM user_library WHERE id = $1 AND user_id = $2`

	listByOwnerSQL = `
SELECT ` + itemColumns + `
FROM user_library
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

	deleteSQL = `DELETE FROM user_library WHERE id = $1 AND user_id = $2`

	countByOwnerSQL = `SELECT count(*) FROM user_library WHERE user_id = $1`
)

// Repo provides library item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new library repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a library item and returns the persisted record.
func (r *Repo) Create(ctx context.Context, item *domain.LibraryItem) (*domain.LibraryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	vars, err := marshalVariables(item.Variables)
	if err != nil {
		return nil, err
	}

	created, err := scanItem(q.QueryRow(ctx, createSQL,
		item.Title, item.Description, item.Content, vars, item.IconID, item.ColorID, item.UserID))
	if err != nil {
		return nil, postgres.MapError(err, "library item", 0)
	}
	return created, nil
}

// GetByID returns a library item owned by the given user.
func (r *Repo) GetByID(ctx context.Context, id, ownerID int64) (*domain.LibraryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(q.QueryRow(ctx, getByIDSQL, id, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "library item", id)
	}
	return item, nil
}

// ListByOwner returns a page of a user's library items, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.LibraryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByOwnerSQL, ownerID, limit, offset)
	if err != nil {
		return nil, postgres.MapError(err, "library item", 0)
	}
	defer rows.Close()

	var items []domain.LibraryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, postgres.MapError(err, "library item", 0)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "library item", 0)
	}

	return items, nil
}

// Update applies a partial update to an item owned by the given user and
// returns the result.
func (r *Repo) Update(ctx context.Context, id, ownerID int64, params domain.LibraryItemUpdate) (*domain.LibraryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Update("user_library").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix("RETURNING " + itemColumns)

	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Description != nil {
		b = b.Set("description", *params.Description)
	}
	if params.Content != nil {
		b = b.Set("content", *params.Content)
	}
	if params.Content != nil || params.Variables != nil {
		vars, err := marshalVariables(params.Variables)
		if err != nil {
			return nil, err
		}
		b = b.Set("variables", vars)
	}
	if params.IconID != nil {
		b = b.Set("icon_id", *params.IconID)
	}
	if params.ColorID != nil {
		b = b.Set("color_id", *params.ColorID)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "library item", id)
	}

	item, err := scanItem(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "library item", id)
	}
	return item, nil
}

// Delete removes an item owned by the given user. Returns domain.ErrNotFound
// when no row matched.
func (r *Repo) Delete(ctx context.Context, id, ownerID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id, ownerID)
	if err != nil {
		return postgres.MapError(err, "library item", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByOwner returns the number of library items a user holds. Used by
// the free tier limiter.
func (r *Repo) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countByOwnerSQL, ownerID).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "library item", 0)
	}
	return total, nil
}

func marshalVariables(vars []domain.Variable) ([]byte, error) {
	if vars == nil {
		vars = []domain.Variable{}
	}
	raw, err := json.Marshal(vars)
	if err != nil {
		return nil, fmt.Errorf("marshal variables: %w", err)
	}
	return raw, nil
}

func scanItem(row pgx.Row) (*domain.LibraryItem, error) {
	var (
		item domain.LibraryItem
		raw  []byte
	)
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.Content,
		&raw,
		&item.IconID,
		&item.ColorID,
		&item.UserID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &item.Variables); err != nil {
			return nil, fmt.Errorf("unmarshal variables: %w", err)
		}
	}
	return &item, nil
}
