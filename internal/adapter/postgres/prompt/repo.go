// Package prompt implements the shared prompt repository using PostgreSQL.
// Prompts and tags form a many-to-many relation through prompt_tags.
package prompt

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

const promptColumns = `id, title, description, content, is_shared, metadata, owner_id, created_at, updated_at`

const (
	createSQL = `
INSERT INTO prompts (title, description, content, is_shared, metadata, owner_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + promptColumns

	getByIDSQL = `
SELECT ` + promptColumns + `
FROM prompts
WHERE id = $1 AND (owner_id = $2 OR is_shared)`

	listByOwnerSQL = `
SELECT ` + promptColumns + `
FROM prompts
WHERE owner_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

	listSharedSQL = `
SELECT ` + promptColumns + `
FROM prompts
WHERE is_shared
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`

	deleteSQL = `DELETE FROM prompts WHERE id = $1 AND owner_id = $2`

	upsertTagSQL = `
INSERT INTO tags (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, name`

	clearTagsSQL  = `DELETE FROM prompt_tags WHERE prompt_id = $1`
	attachTagSQL  = `INSERT INTO prompt_tags (prompt_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	tagsForOneSQL = `
SELECT t.id, t.name
FROM tags t
JOIN prompt_tags pt ON pt.tag_id = t.id
WHERE pt.prompt_id = $1
ORDER BY t.name`
)

// Repo provides prompt persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new prompt repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a prompt without tags. Tags are attached separately with
// SetTags, usually inside the same transaction.
func (r *Repo) Create(ctx context.Context, p *domain.Prompt) (*domain.Prompt, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	meta, err := marshalMetadata(p.Metadata)
	if err != nil {
		return nil, err
	}

	created, err := scanPrompt(q.QueryRow(ctx, createSQL,
		p.Title, p.Description, p.Content, p.IsShared, meta, p.OwnerID))
	if err != nil {
		return nil, postgres.MapError(err, "prompt", 0)
	}
	return created, nil
}

// GetByID returns a prompt visible to the given user: either owned by them
// or marked shared. Tags are loaded eagerly.
func (r *Repo) GetByID(ctx context.Context, id, userID int64) (*domain.Prompt, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPrompt(q.QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "prompt", id)
	}
	if p.Tags, err = r.tagsFor(ctx, q, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// ListByOwner returns the user's own prompts, newest first, with tags.
func (r *Repo) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Prompt, error) {
	return r.list(ctx, listByOwnerSQL, ownerID, limit, offset)
}

// ListShared returns shared prompts, newest first, with tags.
func (r *Repo) ListShared(ctx context.Context, limit, offset int) ([]domain.Prompt, error) {
	return r.list(ctx, listSharedSQL, limit, offset)
}

func (r *Repo) list(ctx context.Context, query string, args ...any) ([]domain.Prompt, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "prompt", 0)
	}
	defer rows.Close()

	var prompts []domain.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, postgres.MapError(err, "prompt", 0)
		}
		prompts = append(prompts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "prompt", 0)
	}

	for i := range prompts {
		if prompts[i].Tags, err = r.tagsFor(ctx, q, prompts[i].ID); err != nil {
			return nil, err
		}
	}

	return prompts, nil
}

// Update applies a partial update to a prompt owned by the given user.
func (r *Repo) Update(ctx context.Context, id, ownerID int64, params domain.PromptUpdate) (*domain.Prompt, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Update("prompts").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + promptColumns)

	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Description != nil {
		b = b.Set("description", *params.Description)
	}
	if params.Content != nil {
		b = b.Set("content", *params.Content)
	}
	if params.IsShared != nil {
		b = b.Set("is_shared", *params.IsShared)
	}
	if params.Metadata != nil {
		meta, err := marshalMetadata(params.Metadata)
		if err != nil {
			return nil, err
		}
		b = b.Set("metadata", meta)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "prompt", id)
	}

	p, err := scanPrompt(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "prompt", id)
	}
	if p.Tags, err = r.tagsFor(ctx, q, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a prompt owned by the given user. Tag links go with it via
// ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, id, ownerID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id, ownerID)
	if err != nil {
		return postgres.MapError(err, "prompt", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetTags replaces the prompt's tag set with the given names, upserting
// tags as needed. Call inside a transaction together with the prompt write.
func (r *Repo) SetTags(ctx context.Context, promptID int64, names []string) ([]domain.Tag, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, clearTagsSQL, promptID); err != nil {
		return nil, postgres.MapError(err, "prompt", promptID)
	}

	tags := make([]domain.Tag, 0, len(names))
	for _, name := range names {
		var t domain.Tag
		if err := q.QueryRow(ctx, upsertTagSQL, name).Scan(&t.ID, &t.Name); err != nil {
			return nil, postgres.MapError(err, "tag", 0)
		}
		if _, err := q.Exec(ctx, attachTagSQL, promptID, t.ID); err != nil {
			return nil, postgres.MapError(err, "prompt", promptID)
		}
		tags = append(tags, t)
	}

	return tags, nil
}

func (r *Repo) tagsFor(ctx context.Context, q postgres.Querier, promptID int64) ([]domain.Tag, error) {
	rows, err := q.Query(ctx, tagsForOneSQL, promptID)
	if err != nil {
		return nil, postgres.MapError(err, "tag", 0)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, postgres.MapError(err, "tag", 0)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "tag", 0)
	}

	return tags, nil
}

func marshalMetadata(meta map[string]any) ([]byte, error) {
	if meta == nil {
		meta = map[string]any{}
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	return raw, nil
}

func scanPrompt(row pgx.Row) (*domain.Prompt, error) {
	var (
		p   domain.Prompt
		raw []byte
	)
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Content,
		&p.IsShared,
		&raw,
		&p.OwnerID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return &p, nil
}
