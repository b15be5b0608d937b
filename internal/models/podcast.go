package models

import (
	"time"

	"github.com/google/uuid"
)

// Default channel metadata applied when a podcast is created without them.
const (
	DefaultCategory = "Technology"
	DefaultLanguage = "en"
)

// Podcast is a show whose episodes are published through an RSS feed.
// Timestamps are stored as ISO-8601 text.
type Podcast struct {
	ID          string `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Author      string `db:"author" json:"author"`
	Description string `db:"description" json:"description"`
	FeedURL     string `db:"feed_url" json:"feed_url"`
	ImageURL    string `db:"image_url" json:"image_url"`
	Category    string `db:"category" json:"category"`
	Language    string `db:"language" json:"language"`
	CreatedAt   string `db:"created_at" json:"created_at"`
}

// EnsureDefaults fills in the generated and defaulted fields that were not
// supplied by the caller. Provided values are never overwritten, so an
// upsert with an existing id replaces that row.
func (p *Podcast) EnsureDefaults() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
	if p.CreatedAt == "" {
		p.CreatedAt = NowUTC()
	}
}

// NowUTC returns the current time as an ISO-8601 UTC string, the storage
// format for every timestamp in the database.
func NowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
