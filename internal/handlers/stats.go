package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"podcast-platform/internal/db"
)

const defaultTopLimit = 10

type statUpdate struct {
	Listens   int `json:"listens"`
	Downloads int `json:"downloads"`
}

// UpdateEpisodeStats appends one stat event for the episode and returns the
// receipt. The episode id is taken on faith.
func (h *Handlers) UpdateEpisodeStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var update statUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	receipt, err := db.RecordEpisodeStats(vars["id"], update.Listens, update.Downloads)
	if err != nil {
		http.Error(w, "Failed to record stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

// GetTopEpisodes returns a podcast's episodes ranked by lifetime listens.
func (h *Handlers) GetTopEpisodes(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	top, err := db.GetTopEpisodes(vars["id"], limit)
	if err != nil {
		http.Error(w, "Failed to get top episodes", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, top)
}

// GetPodcastStats returns episode count and summed listens/downloads.
func (h *Handlers) GetPodcastStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stats, err := db.GetPodcastStats(vars["id"])
	if err != nil {
		http.Error(w, "Failed to get podcast stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
