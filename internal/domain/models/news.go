package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultNewsCategory is filled in when a stored post has no category.
const DefaultNewsCategory = "General"

type NewsPost struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Summary      *string    `json:"summary"`
	Category     string     `json:"category"`
	Content      *string    `json:"content"`
	ImageURL     *string    `json:"imageUrl"`
	ExternalLink *string    `json:"externalLink"`
	IsPublished  bool       `json:"isPublished"`
	PublishedAt  *time.Time `json:"publishedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NewsPatch carries a partial post upsert; a zero ID means insert. Title is
// plain because the backend requires it on insert either way.
type NewsPatch struct {
	ID           uuid.UUID        `json:"id,omitempty"`
	Title        string           `json:"title"`
	Summary      Field[string]    `json:"summary"`
	Category     Field[string]    `json:"category"`
	Content      Field[string]    `json:"content"`
	ImageURL     Field[string]    `json:"imageUrl"`
	ExternalLink Field[string]    `json:"externalLink"`
	IsPublished  Field[bool]      `json:"isPublished"`
	PublishedAt  Field[time.Time] `json:"publishedAt"`
}
