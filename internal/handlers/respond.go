package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/bciai-club/clubdesk/internal/app"
	"github.com/bciai-club/clubdesk/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Debug.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service error kinds to transport status codes.
// Anything unclassified becomes a 500 with the internal message so raw
// store errors never leak to clients.
func writeServiceError(w http.ResponseWriter, err error, notFound, internal string) {
	var missing *models.MissingFieldError

	switch {
	case errors.As(err, &missing):
		writeError(w, http.StatusBadRequest, missing.Error())
	case errors.Is(err, app.ErrAlreadySubscribed):
		writeError(w, http.StatusBadRequest, "You are already subscribed to the newsletter")
	case errors.Is(err, app.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	default:
		logger.Error.Printf("%s: %v", internal, err)
		writeError(w, http.StatusInternalServerError, internal)
	}
}
