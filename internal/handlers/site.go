package handlers

import (
	"net/http"

	"github.com/bciai-club/clubdesk/internal/app"
)

// SiteHandler serves the read-only website endpoints: events, stats and
// the root health message.
type SiteHandler struct {
	service *app.Service
}

func NewSiteHandler(service *app.Service) *SiteHandler {
	return &SiteHandler{
		service: service,
	}
}

func (h *SiteHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListEvents()
	if err != nil {
		writeServiceError(w, err,
			"Events not found",
			"Failed to fetch events",
		)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
	})
}

func (h *SiteHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		writeServiceError(w, err,
			"Stats not found",
			"Failed to fetch stats",
		)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *SiteHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Club backend API is up and running",
	})
}
