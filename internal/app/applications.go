package app

import (
	"fmt"

	"github.com/bciai-club/clubdesk/internal/models"
)

// ApplicationSummary is the listing projection: free-text and multi-valued
// fields stay out of it.
type ApplicationSummary struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Position        string `json:"position"`
	Major           string `json:"major"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Status          string `json:"status"`
	InterviewStatus string `json:"interview_status"`
	CreatedAt       string `json:"created_at"`
}

// ApplicationDetail is the full record with interests/skills split back
// into lists.
type ApplicationDetail struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	StudentID       string   `json:"student_id"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Major           string   `json:"major"`
	Grade           string   `json:"grade"`
	Position        string   `json:"position"`
	Interests       []string `json:"interests"`
	Skills          []string `json:"skills"`
	TeamPreference  string   `json:"team_preference"`
	Experience      string   `json:"experience"`
	Reason          string   `json:"reason"`
	AvailableTime   string   `json:"available_time"`
	GithubURL       string   `json:"github_url"`
	OtherInfo       string   `json:"other_info"`
	Status          string   `json:"status"`
	InterviewStatus string   `json:"interview_status"`
	InterviewNotes  string   `json:"interview_notes"`
	CreatedAt       string   `json:"created_at"`
}

// SubmitApplication validates and normalizes the intake form and persists
// a new pending application.
func (s *Service) SubmitApplication(in *models.ApplicationInput) (*models.Application, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	app := &models.Application{
		Name:            in.Name,
		StudentID:       in.StudentID,
		Email:           in.Email,
		Phone:           in.Phone,
		Major:           in.Major,
		Grade:           in.Grade,
		Position:        in.Position,
		Interests:       in.Interests.Join(),
		Skills:          in.Skills.Join(),
		TeamPreference:  in.TeamPreference,
		Experience:      in.Experience,
		Reason:          in.Reason,
		AvailableTime:   in.AvailableTime,
		GithubURL:       in.GithubURL,
		OtherInfo:       in.OtherInfo,
		Status:          models.StatusPending,
		InterviewStatus: models.InterviewNotScheduled,
		CreatedAt:       s.timestamp(),
	}

	if err := s.Store.CreateApplication(app); err != nil {
		return nil, fmt.Errorf("failed to persist application: %w", err)
	}

	return app, nil
}

// ListApplications returns summaries newest first, optionally filtered to
// one status value.
func (s *Service) ListApplications(status string) ([]ApplicationSummary, error) {
	apps, err := s.Store.ListApplications(status)
	if err != nil {
		return nil, err
	}

	summaries := make([]ApplicationSummary, 0, len(apps))
	for _, a := range apps {
		summaries = append(summaries, ApplicationSummary{
			ID:              a.ID,
			Name:            a.Name,
			Position:        a.Position,
			Major:           a.Major,
			Email:           a.Email,
			Phone:           a.Phone,
			Status:          a.Status,
			InterviewStatus: a.InterviewStatus,
			CreatedAt:       s.formatTimestamp(a.CreatedAt),
		})
	}

	return summaries, nil
}

func (s *Service) GetApplicationDetail(id int64) (*ApplicationDetail, error) {
	app, err := s.Store.GetApplication(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, fmt.Errorf("application %d: %w", id, ErrNotFound)
	}

	return &ApplicationDetail{
		ID:              app.ID,
		Name:            app.Name,
		StudentID:       app.StudentID,
		Email:           app.Email,
		Phone:           app.Phone,
		Major:           app.Major,
		Grade:           app.Grade,
		Position:        app.Position,
		Interests:       models.SplitJoined(app.Interests),
		Skills:          models.SplitJoined(app.Skills),
		TeamPreference:  app.TeamPreference,
		Experience:      app.Experience,
		Reason:          app.Reason,
		AvailableTime:   app.AvailableTime,
		GithubURL:       app.GithubURL,
		OtherInfo:       app.OtherInfo,
		Status:          app.Status,
		InterviewStatus: app.InterviewStatus,
		InterviewNotes:  app.InterviewNotes,
		CreatedAt:       s.formatTimestamp(app.CreatedAt),
	}, nil
}

// UpdateApplicationStatus applies the present patch fields and leaves the
// rest untouched. Status and interview_status move on independent axes,
// no transition is blocked.
func (s *Service) UpdateApplicationStatus(id int64, patch models.ApplicationStatusPatch) error {
	found, err := s.Store.UpdateApplication(id, patch)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("application %d: %w", id, ErrNotFound)
	}
	return nil
}
