package domain

import "time"

// HistoryEntry records one prompt improvement. Entries are immutable once
// written; UserID is nil for anonymous improvements.
type HistoryEntry struct {
	ID             int64
	Title          *string
	Description    *string
	OriginalPrompt string
	ImprovedPrompt string
	URL            *string
	UserID         *int64
	CreatedAt      time.Time
}
