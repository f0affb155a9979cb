package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

// SeedUser inserts a user with a unique email and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) *domain.User {
	t.Helper()

	email := fmt.Sprintf("user-%s@example.com", uuid.New().String()[:8])

	var u domain.User
	err := pool.QueryRow(context.Background(), `
INSERT INTO users (email, display_name, is_active, payment_status)
VALUES ($1, $2, TRUE, 'unpaid')
RETURNING id, email, display_name, is_active, payment_status, created_at`,
		email, "Seed User",
	).Scan(&u.ID, &u.Email, &u.DisplayName, &u.IsActive, &u.PaymentStatus, &u.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}

	return &u
}

// SeedHistoryEntry inserts a history row owned by userID (nil for anonymous).
func SeedHistoryEntry(t *testing.T, pool *pgxpool.Pool, userID *int64) *domain.HistoryEntry {
	t.Helper()

	var e domain.HistoryEntry
	err := pool.QueryRow(context.Background(), `
INSERT INTO prompt_history (original_prompt, improved_prompt, user_id)
VALUES ($1, $2, $3)
RETURNING id, original_prompt, improved_prompt, user_id, created_at`,
		"original", "improved", userID,
	).Scan(&e.ID, &e.OriginalPrompt, &e.ImprovedPrompt, &e.UserID, &e.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed history entry: %v", err)
	}

	return &e
}
