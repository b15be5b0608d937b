package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"podcast-platform/internal/feed"
)

// GetRSSFeed serves the podcast's RSS 2.0 feed. An unknown podcast id still
// answers 200 with the renderer's diagnostic comment.
func (h *Handlers) GetRSSFeed(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	rss, err := feed.GenerateRSS(vars["id"])
	if err != nil {
		log.Printf("Error generating RSS: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml")
	w.Write([]byte(rss))
}

// ExportOPML serves the subscription list for all podcasts.
func (h *Handlers) ExportOPML(w http.ResponseWriter, r *http.Request) {
	opml, err := feed.ExportOPML()
	if err != nil {
		log.Printf("Error exporting OPML: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/x-opml")
	w.Write([]byte(opml))
}
