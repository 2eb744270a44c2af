package handlers

import (
	"net/http"

	"github.com/bciai-club/clubdesk/internal/app"
)

// Register wires the API routes onto the mux. Shared between main and the
// handler tests so both exercise the same table.
func Register(mux *http.ServeMux, service *app.Service) {
	applications := NewApplicationHandler(service)
	newsletter := NewNewsletterHandler(service)
	contact := NewContactHandler(service)
	site := NewSiteHandler(service)

	mux.HandleFunc("POST /api/apply", applications.HandleSubmit)
	mux.HandleFunc("GET /api/applications", applications.HandleList)
	mux.HandleFunc("GET /api/applications/{id}", applications.HandleDetail)
	mux.HandleFunc("PUT /api/applications/{id}", applications.HandleUpdate)

	mux.HandleFunc("POST /api/newsletter", newsletter.HandleSubscribe)
	mux.HandleFunc("POST /api/contact", contact.HandleSubmit)

	mux.HandleFunc("GET /api/events", site.HandleEvents)
	mux.HandleFunc("GET /api/stats", site.HandleStats)
	mux.HandleFunc("GET /{$}", site.HandleHealth)
}
