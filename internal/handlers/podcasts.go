package handlers

import (
	"encoding/json"
	"net/http"

	"podcast-platform/internal/db"
	"podcast-platform/internal/models"
)

// CreatePodcast upserts a podcast from a JSON body. Omitted id, timestamps,
// category and language are generated server-side.
func (h *Handlers) CreatePodcast(w http.ResponseWriter, r *http.Request) {
	var podcast models.Podcast
	if err := json.NewDecoder(r.Body).Decode(&podcast); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if podcast.Title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}

	podcast.EnsureDefaults()
	if err := db.CreatePodcast(podcast); err != nil {
		http.Error(w, "Failed to save podcast", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, podcast)
}

// ListPodcasts returns every podcast, alphabetical by title.
func (h *Handlers) ListPodcasts(w http.ResponseWriter, r *http.Request) {
	podcasts, err := db.ListPodcasts()
	if err != nil {
		http.Error(w, "Failed to list podcasts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, podcasts)
}
