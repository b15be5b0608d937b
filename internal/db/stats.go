package db

import (
	"log"

	"podcast-platform/internal/models"
)

// RecordEpisodeStats appends one immutable stat event for the episode and
// returns a receipt. The episode id is not validated; events for unknown
// episodes simply never contribute to any aggregate.
func RecordEpisodeStats(episodeID string, listens, downloads int) (models.StatReceipt, error) {
	event := models.NewStatEvent(episodeID, listens, downloads)
	_, err := DB.Exec(`
		INSERT INTO stats (id, episode_id, listens, downloads, recorded_at)
		VALUES (?, ?, ?, ?, ?)`,
		event.ID, event.EpisodeID, event.Listens, event.Downloads, event.RecordedAt)
	if err != nil {
		log.Printf("Error recording stats for episode %s: %v", episodeID, err)
		return models.StatReceipt{}, err
	}
	return models.StatReceipt{
		OK:         true,
		EpisodeID:  event.EpisodeID,
		RecordedAt: event.RecordedAt,
	}, nil
}

// GetTopEpisodes returns up to limit episodes of a podcast ordered by
// lifetime listens descending. Equal listen totals fall back to episode id
// ascending so the order is stable.
func GetTopEpisodes(podcastID string, limit int) ([]models.EpisodeTotals, error) {
	totals := []models.EpisodeTotals{}
	err := DB.Select(&totals, `
		SELECT e.id, e.title, e.episode_num, e.season,
		       COALESCE(SUM(s.listens), 0)   AS total_listens,
		       COALESCE(SUM(s.downloads), 0) AS total_downloads
		FROM episodes e
		LEFT JOIN stats s ON s.episode_id = e.id
		WHERE e.podcast_id = ?
		GROUP BY e.id
		ORDER BY total_listens DESC, e.id ASC
		LIMIT ?`,
		podcastID, limit)
	if err != nil {
		log.Printf("Error getting top episodes for podcast %s: %v", podcastID, err)
		return nil, err
	}
	return totals, nil
}

// GetPodcastStats sums a podcast's episodes and stat events. A podcast with
// no episodes or no events yields zeros, not an error.
func GetPodcastStats(podcastID string) (models.PodcastStats, error) {
	stats := models.PodcastStats{PodcastID: podcastID}

	err := DB.Get(&stats.EpisodeCount,
		"SELECT COUNT(*) FROM episodes WHERE podcast_id = ?", podcastID)
	if err != nil {
		log.Printf("Error counting episodes for podcast %s: %v", podcastID, err)
		return models.PodcastStats{}, err
	}

	row := DB.QueryRow(`
		SELECT COALESCE(SUM(s.listens), 0)   AS total_listens,
		       COALESCE(SUM(s.downloads), 0) AS total_downloads
		FROM episodes e
		LEFT JOIN stats s ON s.episode_id = e.id
		WHERE e.podcast_id = ?`,
		podcastID)
	if err := row.Scan(&stats.TotalListens, &stats.TotalDownloads); err != nil {
		log.Printf("Error summing stats for podcast %s: %v", podcastID, err)
		return models.PodcastStats{}, err
	}

	return stats, nil
}
