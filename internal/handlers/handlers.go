package handlers

import (
	"encoding/json"
	"net/http"
)

// Handlers groups the HTTP endpoints over the platform's core operations.
type Handlers struct{}

func New() *Handlers {
	return &Handlers{}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
