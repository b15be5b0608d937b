package models

import "github.com/google/uuid"

// Episode belongs to a podcast. PublishedAt is optional; episodes without
// one never appear in rendered feeds. It is kept as raw text so that a
// malformed stored value can still be passed through during rendering.
type Episode struct {
	ID           string  `db:"id" json:"id"`
	PodcastID    string  `db:"podcast_id" json:"podcast_id"`
	Title        string  `db:"title" json:"title"`
	Description  string  `db:"description" json:"description"`
	AudioURL     string  `db:"audio_url" json:"audio_url"`
	DurationSecs int     `db:"duration_secs" json:"duration_secs"`
	PublishedAt  *string `db:"published_at" json:"published_at,omitempty"`
	Season       *int    `db:"season" json:"season,omitempty"`
	EpisodeNum   *int    `db:"episode_num" json:"episode_num,omitempty"`
	Explicit     bool    `db:"explicit" json:"explicit"`
	CreatedAt    string  `db:"created_at" json:"created_at"`
}

// EnsureDefaults fills in the generated fields that were not supplied.
func (e *Episode) EnsureDefaults() {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt == "" {
		e.CreatedAt = NowUTC()
	}
}
