package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/bciai-club/clubdesk/internal/app"
	"github.com/bciai-club/clubdesk/internal/metrics"
	"github.com/bciai-club/clubdesk/internal/models"
)

type ApplicationHandler struct {
	service *app.Service
}

func NewApplicationHandler(service *app.Service) *ApplicationHandler {
	return &ApplicationHandler{
		service: service,
	}
}

func (h *ApplicationHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		metrics.APIRequestDuration.WithLabelValues(
			r.URL.Path,
			r.Method,
			"201",
		).Observe(duration)
	}()

	var input models.ApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.Debug.Printf("Malformed apply payload: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	application, err := h.service.SubmitApplication(&input)
	if err != nil {
		writeServiceError(w, err,
			"Application not found",
			"Failed to submit application",
		)
		return
	}

	metrics.ApplicationsTotal.WithLabelValues(application.Position).Inc()

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Application submitted! We will contact you soon to arrange an interview.",
	})
}

func (h *ApplicationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	applications, err := h.service.ListApplications(status)
	if err != nil {
		writeServiceError(w, err,
			"Application not found",
			"Failed to fetch applications",
		)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"applications": applications,
	})
}

func (h *ApplicationHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Application not found")
		return
	}

	detail, err := h.service.GetApplicationDetail(id)
	if err != nil {
		writeServiceError(w, err,
			"Application not found",
			"Failed to fetch application detail",
		)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (h *ApplicationHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Application not found")
		return
	}

	var patch models.ApplicationStatusPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		logger.Debug.Printf("Malformed status patch for application %d: %v", id, err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateApplicationStatus(id, patch); err != nil {
		writeServiceError(w, err,
			"Application not found",
			"Failed to update application status",
		)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Application status updated",
	})
}
