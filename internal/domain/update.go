package domain

// UserUpdate holds the fields of a partial user update. Nil fields are left
// untouched; last write wins.
type UserUpdate struct {
	Email          *string
	GoogleID       *string
	HashedPassword *string
	DisplayName    *string
	PhotoURL       *string
	IsActive       *bool
	PaymentStatus  *PaymentStatus
}

// LibraryItemUpdate holds the fields of a partial library item update.
// Variables must accompany Content, re-extracted from the new text.
type LibraryItemUpdate struct {
	Title       *string
	Description *string
	Content     *string
	Variables   []Variable
	IconID      *string
	ColorID     *string
}

// PromptUpdate holds the fields of a partial prompt update. A nil Tags
// leaves the tag set alone; an empty non-nil slice clears it.
type PromptUpdate struct {
	Title       *string
	Description *string
	Content     *string
	IsShared    *bool
	Metadata    map[string]any
	Tags        []string
}
