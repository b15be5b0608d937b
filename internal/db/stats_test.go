package db

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRecordEpisodeStats(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO stats`).
		WithArgs(sqlmock.AnyArg(), "ep-1", 100, 50, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	receipt, err := RecordEpisodeStats("ep-1", 100, 50)
	assert.NoError(t, err)
	assert.True(t, receipt.OK)
	assert.Equal(t, "ep-1", receipt.EpisodeID)

	_, err = time.Parse(time.RFC3339, receipt.RecordedAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTopEpisodesOrderedAndLimited(t *testing.T) {
	mock := newMockDB(t)

	columns := []string{"id", "title", "episode_num", "season", "total_listens", "total_downloads"}
	rows := sqlmock.NewRows(columns).
		AddRow("ep-3", "Ep 3", 3, 1, 600, 150).
		AddRow("ep-1", "Ep 1", 1, 1, 100, 50).
		AddRow("ep-2", "Ep 2", 2, 1, 0, 0)
	mock.ExpectQuery(`ORDER BY total_listens DESC, e\.id ASC`).
		WithArgs("pod-1", 5).
		WillReturnRows(rows)

	top, err := GetTopEpisodes("pod-1", 5)
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(top), 5)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].TotalListens, top[i].TotalListens)
	}
	assert.EqualValues(t, 600, top[0].TotalListens)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPodcastStatsZeroEpisodes(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM episodes WHERE podcast_id = \?`).
		WithArgs("pod-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`COALESCE\(SUM\(s\.listens\), 0\)`).
		WithArgs("pod-1").
		WillReturnRows(sqlmock.NewRows([]string{"total_listens", "total_downloads"}).AddRow(0, 0))

	stats, err := GetPodcastStats("pod-1")
	assert.NoError(t, err)
	assert.Equal(t, "pod-1", stats.PodcastID)
	assert.Equal(t, 0, stats.EpisodeCount)
	assert.EqualValues(t, 0, stats.TotalListens)
	assert.EqualValues(t, 0, stats.TotalDownloads)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPodcastStatsSumsAcrossEpisodes(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM episodes WHERE podcast_id = \?`).
		WithArgs("pod-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`COALESCE\(SUM\(s\.listens\), 0\)`).
		WithArgs("pod-1").
		WillReturnRows(sqlmock.NewRows([]string{"total_listens", "total_downloads"}).AddRow(600, 150))

	stats, err := GetPodcastStats("pod-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.EpisodeCount)
	assert.EqualValues(t, 600, stats.TotalListens)
	assert.EqualValues(t, 150, stats.TotalDownloads)
	assert.NoError(t, mock.ExpectationsWereMet())
}
