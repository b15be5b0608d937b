package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"podcast-platform/internal/db"
	"podcast-platform/internal/models"
)

// AddEpisode upserts an episode under the podcast named in the path. The
// podcast is not required to exist; the reference is advisory.
func (h *Handlers) AddEpisode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var episode models.Episode
	if err := json.NewDecoder(r.Body).Decode(&episode); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if episode.Title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}
	if episode.DurationSecs < 0 {
		http.Error(w, "Duration must be non-negative", http.StatusBadRequest)
		return
	}

	episode.PodcastID = vars["id"]
	episode.EnsureDefaults()
	if err := db.CreateEpisode(episode); err != nil {
		http.Error(w, "Failed to save episode", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, episode)
}

// ListEpisodes returns a podcast's episodes, newest published first.
func (h *Handlers) ListEpisodes(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	episodes, err := db.ListEpisodesByPodcastID(vars["id"])
	if err != nil {
		http.Error(w, "Failed to list episodes", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, episodes)
}
