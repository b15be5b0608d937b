package db

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"podcast-platform/internal/models"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	mockDb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	originalDB := DB
	DB = sqlx.NewDb(mockDb, "sqlmock")
	t.Cleanup(func() {
		DB = originalDB
		mockDb.Close()
	})
	return mock
}

var podcastColumns = []string{
	"id", "title", "author", "description", "feed_url", "image_url",
	"category", "language", "created_at",
}

func TestCreatePodcastUpserts(t *testing.T) {
	mock := newMockDB(t)

	p := models.Podcast{
		ID: "pod-1", Title: "BlackRoad Dev Talks", Author: "Alexa",
		Description: "Tech conversations", FeedURL: "https://podcast.blackroad.ai/feed.xml",
		Category: "Technology", Language: "en", CreatedAt: "2024-01-01T00:00:00Z",
	}

	mock.ExpectExec(`INSERT OR REPLACE INTO podcasts`).
		WithArgs(p.ID, p.Title, p.Author, p.Description, p.FeedURL, p.ImageURL,
			p.Category, p.Language, p.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, CreatePodcast(p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPodcastByIDNotFound(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM podcasts WHERE id = \?`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := GetPodcastByID("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListPodcastsAlphabetical(t *testing.T) {
	mock := newMockDB(t)

	rows := sqlmock.NewRows(podcastColumns).
		AddRow("pod-2", "Alpha Waves", "", "", "", "", "Technology", "en", "2024-01-01T00:00:00Z").
		AddRow("pod-1", "Zebra Crossing", "", "", "", "", "Technology", "en", "2024-01-01T00:00:00Z")
	mock.ExpectQuery(`SELECT \* FROM podcasts ORDER BY title`).WillReturnRows(rows)

	podcasts, err := ListPodcasts()
	assert.NoError(t, err)
	assert.Len(t, podcasts, 2)
	assert.Equal(t, "Alpha Waves", podcasts[0].Title)
	assert.Equal(t, "Zebra Crossing", podcasts[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
