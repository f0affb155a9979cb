package domain

import "time"

// Prompt is a general sharable prompt entity, independent of the
// improvement workflow.
type Prompt struct {
	ID          int64
	Title       string
	Description *string
	Content     string
	IsShared    bool
	Metadata    map[string]any
	OwnerID     int64
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Tag labels prompts. Tag names are unique application-wide.
type Tag struct {
	ID   int64
	Name string
}
