package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/bciai-club/clubdesk/internal/models"
)

type EventView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
}

type ApplicationStatusCounts struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type StatsPayload struct {
	TotalApplications int64                   `json:"total_applications"`
	TotalContacts     int64                   `json:"total_contacts"`
	TotalSubscribers  int64                   `json:"total_subscribers"`
	TotalEvents       int64                   `json:"total_events"`
	ApplicationStatus ApplicationStatusCounts `json:"application_status"`
	PaperStats        []PaperStat             `json:"paper_stats"`
	ResearchAreas     []ResearchArea          `json:"research_areas"`
}

// ListEvents returns upcoming events ordered by date ascending.
func (s *Service) ListEvents() ([]EventView, error) {
	events, err := s.Store.ListEvents()
	if err != nil {
		return nil, err
	}

	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, EventView{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Date:        s.formatEventDate(e),
			Location:    e.Location,
		})
	}
	return views, nil
}

func (s *Service) formatEventDate(e models.Event) string {
	return time.Unix(e.Date, 0).UTC().Format(s.Config.Display.EventDateFormat)
}

// GetStats combines live counters with the configured paper and research
// distributions. The payload goes through the redis cache when one is
// configured; counters may then lag by up to the cache TTL.
func (s *Service) GetStats(ctx context.Context) (*StatsPayload, error) {
	if cached, ok := s.Cache.Fetch(ctx); ok {
		return cached, nil
	}

	counts, err := s.Store.FetchOverviewStats()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}

	payload := &StatsPayload{
		TotalApplications: counts.TotalApplications,
		TotalContacts:     counts.TotalContacts,
		TotalSubscribers:  counts.ActiveSubscribers,
		TotalEvents:       counts.TotalEvents,
		ApplicationStatus: ApplicationStatusCounts{
			Pending:  counts.PendingApplications,
			Approved: counts.ApprovedApplications,
			Rejected: counts.TotalApplications - counts.PendingApplications - counts.ApprovedApplications,
		},
		PaperStats:    s.Config.Stats.PaperStats,
		ResearchAreas: s.Config.Stats.ResearchAreas,
	}

	if err := s.Cache.Put(ctx, payload); err != nil {
		logger.Debug.Printf("Failed to cache stats payload: %v", err)
	}

	return payload, nil
}
