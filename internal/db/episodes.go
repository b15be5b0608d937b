package db

import (
	"log"

	"podcast-platform/internal/models"
)

// CreateEpisode inserts or wholesale-replaces an episode keyed by id. The
// podcast id is not validated against the podcasts table.
func CreateEpisode(e models.Episode) error {
	_, err := DB.Exec(`
		INSERT OR REPLACE INTO episodes
			(id, podcast_id, title, description, audio_url, duration_secs,
			 published_at, season, episode_num, explicit, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.PodcastID, e.Title, e.Description, e.AudioURL, e.DurationSecs,
		e.PublishedAt, e.Season, e.EpisodeNum, e.Explicit, e.CreatedAt)
	if err != nil {
		log.Printf("Error upserting episode %s: %v", e.ID, err)
	}
	return err
}

// ListEpisodesByPodcastID returns all episodes for a podcast, newest
// published first. Episodes without a publish timestamp sort last.
func ListEpisodesByPodcastID(podcastID string) ([]models.Episode, error) {
	episodes := []models.Episode{}
	err := DB.Select(&episodes, `
		SELECT * FROM episodes
		WHERE podcast_id = ?
		ORDER BY published_at IS NULL, published_at DESC`,
		podcastID)
	if err != nil {
		log.Printf("Error listing episodes for podcast %s: %v", podcastID, err)
		return nil, err
	}
	return episodes, nil
}

// GetPublishedEpisodes returns only episodes carrying a publish timestamp,
// newest first. These are the episodes that appear in the RSS feed.
func GetPublishedEpisodes(podcastID string) ([]models.Episode, error) {
	episodes := []models.Episode{}
	err := DB.Select(&episodes, `
		SELECT * FROM episodes
		WHERE podcast_id = ? AND published_at IS NOT NULL
		ORDER BY published_at DESC`,
		podcastID)
	if err != nil {
		log.Printf("Error getting published episodes for podcast %s: %v", podcastID, err)
		return nil, err
	}
	return episodes, nil
}
