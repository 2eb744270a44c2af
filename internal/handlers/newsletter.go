package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/bciai-club/clubdesk/internal/app"
	"github.com/bciai-club/clubdesk/internal/metrics"
)

type NewsletterHandler struct {
	service *app.Service
}

func NewNewsletterHandler(service *app.Service) *NewsletterHandler {
	return &NewsletterHandler{
		service: service,
	}
}

func (h *NewsletterHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Debug.Printf("Malformed newsletter payload: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Subscribe(body.Email)
	if err != nil {
		if errors.Is(err, app.ErrAlreadySubscribed) {
			metrics.NewsletterEventsTotal.WithLabelValues("conflict").Inc()
		}
		writeServiceError(w, err,
			"Subscription not found",
			"Failed to subscribe",
		)
		return
	}

	if result.Reactivated {
		metrics.NewsletterEventsTotal.WithLabelValues("reactivated").Inc()
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "You have been resubscribed to the newsletter!",
		})
		return
	}

	metrics.NewsletterEventsTotal.WithLabelValues("created").Inc()
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Subscribed! You will receive our latest updates.",
	})
}
