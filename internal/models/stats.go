package models

import "github.com/google/uuid"

// StatEvent is one immutable measurement for an episode. Events are only
// ever inserted; totals are derived by summing them, so independent
// measurement sources never clobber each other.
type StatEvent struct {
	ID         string `db:"id" json:"id"`
	EpisodeID  string `db:"episode_id" json:"episode_id"`
	Listens    int    `db:"listens" json:"listens"`
	Downloads  int    `db:"downloads" json:"downloads"`
	RecordedAt string `db:"recorded_at" json:"recorded_at"`
}

// NewStatEvent builds an event with a fresh id and the current UTC timestamp.
func NewStatEvent(episodeID string, listens, downloads int) StatEvent {
	return StatEvent{
		ID:         uuid.NewString(),
		EpisodeID:  episodeID,
		Listens:    listens,
		Downloads:  downloads,
		RecordedAt: NowUTC(),
	}
}

// StatReceipt confirms that a stat event was recorded.
type StatReceipt struct {
	OK         bool   `json:"ok"`
	EpisodeID  string `json:"episode_id"`
	RecordedAt string `json:"recorded_at"`
}

// EpisodeTotals is an episode annotated with its lifetime summed counts.
type EpisodeTotals struct {
	ID             string `db:"id" json:"id"`
	Title          string `db:"title" json:"title"`
	EpisodeNum     *int   `db:"episode_num" json:"episode_num,omitempty"`
	Season         *int   `db:"season" json:"season,omitempty"`
	TotalListens   int64  `db:"total_listens" json:"total_listens"`
	TotalDownloads int64  `db:"total_downloads" json:"total_downloads"`
}

// PodcastStats aggregates a podcast's episodes and their stat events.
type PodcastStats struct {
	PodcastID      string `json:"podcast_id"`
	EpisodeCount   int    `json:"episode_count"`
	TotalListens   int64  `json:"total_listens"`
	TotalDownloads int64  `json:"total_downloads"`
}
