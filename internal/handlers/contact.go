package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/bciai-club/clubdesk/internal/app"
	"github.com/bciai-club/clubdesk/internal/metrics"
	"github.com/bciai-club/clubdesk/internal/models"
)

type ContactHandler struct {
	service *app.Service
}

func NewContactHandler(service *app.Service) *ContactHandler {
	return &ContactHandler{
		service: service,
	}
}

func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var input models.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.Debug.Printf("Malformed contact payload: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.service.SubmitContact(&input); err != nil {
		writeServiceError(w, err,
			"Message not found",
			"Failed to send message",
		)
		return
	}

	metrics.ContactMessagesTotal.Inc()

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Message sent! We will get back to you soon.",
	})
}
