package db

import (
	"log"

	"podcast-platform/internal/models"
)

// CreatePodcast inserts or wholesale-replaces a podcast keyed by id.
func CreatePodcast(p models.Podcast) error {
	_, err := DB.Exec(`
		INSERT OR REPLACE INTO podcasts
			(id, title, author, description, feed_url, image_url, category, language, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Author, p.Description, p.FeedURL, p.ImageURL,
		p.Category, p.Language, p.CreatedAt)
	if err != nil {
		log.Printf("Error upserting podcast %s: %v", p.ID, err)
	}
	return err
}

// GetPodcastByID returns sql.ErrNoRows when the podcast does not exist.
func GetPodcastByID(id string) (models.Podcast, error) {
	podcast := models.Podcast{}
	err := DB.Get(&podcast, "SELECT * FROM podcasts WHERE id = ?", id)
	return podcast, err
}

// ListPodcasts returns all podcasts, alphabetical by title.
func ListPodcasts() ([]models.Podcast, error) {
	podcasts := []models.Podcast{}
	err := DB.Select(&podcasts, "SELECT * FROM podcasts ORDER BY title")
	if err != nil {
		log.Printf("Error listing podcasts: %v", err)
		return nil, err
	}
	return podcasts, nil
}
