package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPodcastEnsureDefaults(t *testing.T) {
	p := Podcast{Title: "BlackRoad Dev Talks"}
	p.EnsureDefaults()

	_, err := uuid.Parse(p.ID)
	assert.NoError(t, err, "generated id should be a uuid")
	assert.Equal(t, "Technology", p.Category)
	assert.Equal(t, "en", p.Language)

	createdAt, err := time.Parse(time.RFC3339, p.CreatedAt)
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, createdAt.Location())
}

func TestPodcastEnsureDefaultsKeepsProvidedValues(t *testing.T) {
	p := Podcast{
		ID:        "fixed-id",
		Title:     "News Hour",
		Category:  "News",
		Language:  "de",
		CreatedAt: "2024-01-01T00:00:00Z",
	}
	p.EnsureDefaults()

	assert.Equal(t, "fixed-id", p.ID)
	assert.Equal(t, "News", p.Category)
	assert.Equal(t, "de", p.Language)
	assert.Equal(t, "2024-01-01T00:00:00Z", p.CreatedAt)
}

func TestEpisodeEnsureDefaults(t *testing.T) {
	e := Episode{PodcastID: "pod-1", Title: "Episode 1"}
	e.EnsureDefaults()

	_, err := uuid.Parse(e.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, e.CreatedAt)
	assert.Nil(t, e.PublishedAt)
	assert.Nil(t, e.Season)
	assert.Nil(t, e.EpisodeNum)
}

func TestNewStatEvent(t *testing.T) {
	ev := NewStatEvent("ep-1", 100, 50)

	_, err := uuid.Parse(ev.ID)
	assert.NoError(t, err)
	assert.Equal(t, "ep-1", ev.EpisodeID)
	assert.Equal(t, 100, ev.Listens)
	assert.Equal(t, 50, ev.Downloads)

	_, err = time.Parse(time.RFC3339, ev.RecordedAt)
	assert.NoError(t, err)
}
