// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/promptmixer/promptmixer-backend/internal/adapter/postgres"
	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

const userColumns = `id, email, google_id, hashed_password, display_name, photo_url,
       is_active, payment_status, created_at, updated_at`

const (
	getByIDSQL       = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	getByEmailSQL    = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	getByGoogleIDSQL = `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`

	createSQL = `
INSERT INTO users (email, google_id, hashed_password, display_name, photo_url, is_active, payment_status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

	listSQL  = `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`
	countSQL = `SELECT count(*) FROM users`
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return u, nil
}

// GetByGoogleID returns a user by their external Google subject id.
func (r *Repo) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByGoogleIDSQL, googleID))
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	status := u.PaymentStatus
	if status == "" {
		status = domain.PaymentStatusUnpaid
	}

	created, err := scanUser(q.QueryRow(ctx, createSQL,
		u.Email, u.GoogleID, u.HashedPassword, u.DisplayName, u.PhotoURL, u.IsActive, status))
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return created, nil
}

// Update applies a partial update and returns the resulting user.
// Only non-nil fields of params are written.
func (r *Repo) Update(ctx context.Context, id int64, params domain.UserUpdate) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns)

	if params.Email != nil {
		b = b.Set("email", *params.Email)
	}
	if params.GoogleID != nil {
		b = b.Set("google_id", *params.GoogleID)
	}
	if params.HashedPassword != nil {
		b = b.Set("hashed_password", *params.HashedPassword)
	}
	if params.DisplayName != nil {
		b = b.Set("display_name", *params.DisplayName)
	}
	if params.PhotoURL != nil {
		b = b.Set("photo_url", *params.PhotoURL)
	}
	if params.IsActive != nil {
		b = b.Set("is_active", *params.IsActive)
	}
	if params.PaymentStatus != nil {
		b = b.Set("payment_status", params.PaymentStatus.String())
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u, err := scanUser(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// List returns users ordered by id with limit/offset pagination.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, limit, offset)
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, postgres.MapError(err, "user", 0)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	return users, nil
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "user", 0)
	}
	return total, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.GoogleID,
		&u.HashedPassword,
		&u.DisplayName,
		&u.PhotoURL,
		&u.IsActive,
		&u.PaymentStatus,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
