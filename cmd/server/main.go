package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"podcast-platform/internal/db"
	"podcast-platform/internal/handlers"
	"podcast-platform/internal/middleware"
)

// CommitSHA is set at build time via ldflags
var CommitSHA = "unknown"

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	if err := db.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	h := handlers.New()
	rateLimiter := middleware.NewRateLimiterMiddleware(rate.Limit(5), 10)

	r := mux.NewRouter()
	r.Use(rateLimiter.Middleware)
	r.HandleFunc("/podcasts", h.CreatePodcast).Methods(http.MethodPost)
	r.HandleFunc("/podcasts", h.ListPodcasts).Methods(http.MethodGet)
	r.HandleFunc("/podcasts/{id}/episodes", h.AddEpisode).Methods(http.MethodPost)
	r.HandleFunc("/podcasts/{id}/episodes", h.ListEpisodes).Methods(http.MethodGet)
	r.HandleFunc("/podcasts/{id}/feed.xml", h.GetRSSFeed).Methods(http.MethodGet)
	r.HandleFunc("/podcasts/{id}/stats", h.GetPodcastStats).Methods(http.MethodGet)
	r.HandleFunc("/podcasts/{id}/top", h.GetTopEpisodes).Methods(http.MethodGet)
	r.HandleFunc("/episodes/{id}/stats", h.UpdateEpisodeStats).Methods(http.MethodPost)
	r.HandleFunc("/opml", h.ExportOPML).Methods(http.MethodGet)

	log.Printf("Starting server on :%s (commit: %s)", port, CommitSHA)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
