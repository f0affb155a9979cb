package domain

import "time"

// Variable is a user-fillable `{{name}}` slot inside library item content.
type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// LibraryItem is a saved, reusable prompt template owned by a user.
// Variables are derived from the content on create and re-derived on every
// content change.
type LibraryItem struct {
	ID          int64
	Title       string
	Description *string
	Content     string
	Variables   []Variable
	IconID      *string
	ColorID     *string
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
