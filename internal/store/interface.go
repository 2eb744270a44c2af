package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/bciai-club/clubdesk/internal/models"
)

type ClubStore interface {
	Close() error
	ApplyMigrations(dir string) error

	CreateApplication(app *models.Application) error
	GetApplication(id int64) (*models.Application, error)
	ListApplications(status string) ([]models.Application, error)
	UpdateApplication(id int64, patch models.ApplicationStatusPatch) (bool, error)

	GetSubscriptionByEmail(email string) (*models.NewsletterSubscription, error)
	CreateSubscription(sub *models.NewsletterSubscription) error
	ReactivateSubscription(email string, subscribedAt int64) error

	CreateContactMessage(msg *models.ContactMessage) error

	ListEvents() ([]models.Event, error)
	FetchOverviewStats() (*OverviewStats, error)
}

const applicationColumns = `
	id, name, student_id, email, phone, major, grade, position,
	interests, skills, team_preference, experience, reason,
	available_time, github_url, other_info,
	status, interview_status, interview_notes, created_at`

// BaseStore provides common functionality for different DB implementations
type BaseStore struct {
	DB        *sqlx.DB
	Converter func(string) string
}

func (s *BaseStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// ApplyMigrations applies SQL migrations from a directory, translating dialect if needed
func (s *BaseStore) ApplyMigrations(dir string, translateSQL func(string) string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		content, err := os.ReadFile(fmt.Sprintf("%s/%s", dir, file.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file.Name(), err)
		}

		sql := string(content)
		if translateSQL != nil {
			sql = translateSQL(sql)
		}

		if _, err := s.DB.Exec(sql); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file.Name(), err)
		}
	}

	return nil
}

func (s *BaseStore) GetApplication(id int64) (*models.Application, error) {
	var app models.Application
	query := s.Converter(fmt.Sprintf(`
		SELECT %s
		FROM applications
		WHERE id = ?
	`, applicationColumns))

	err := s.DB.Get(&app, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// ListApplications returns applications newest first, insertion order on
// equal timestamps. An empty status means no filter.
func (s *BaseStore) ListApplications(status string) ([]models.Application, error) {
	var apps []models.Application

	query := fmt.Sprintf(`
		SELECT %s
		FROM applications
		ORDER BY created_at DESC, id ASC
	`, applicationColumns)

	var err error
	if status == "" {
		err = s.DB.Select(&apps, query)
	} else {
		query = s.Converter(fmt.Sprintf(`
			SELECT %s
			FROM applications
			WHERE status = ?
			ORDER BY created_at DESC, id ASC
		`, applicationColumns))
		err = s.DB.Select(&apps, query, status)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, nil
}

// UpdateApplication applies the non-nil patch fields. Returns false when
// no row has the given id.
func (s *BaseStore) UpdateApplication(id int64, patch models.ApplicationStatusPatch) (bool, error) {
	if patch.IsEmpty() {
		app, err := s.GetApplication(id)
		if err != nil {
			return false, err
		}
		return app != nil, nil
	}

	var sets []string
	var args []interface{}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	if patch.InterviewStatus != nil {
		sets = append(sets, "interview_status = ?")
		args = append(args, *patch.InterviewStatus)
	}
	if patch.InterviewNotes != nil {
		sets = append(sets, "interview_notes = ?")
		args = append(args, *patch.InterviewNotes)
	}
	args = append(args, id)

	query := s.Converter(fmt.Sprintf(
		"UPDATE applications SET %s WHERE id = ?",
		strings.Join(sets, ", "),
	))

	res, err := s.DB.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update application: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

func (s *BaseStore) GetSubscriptionByEmail(email string) (*models.NewsletterSubscription, error) {
	var sub models.NewsletterSubscription
	query := s.Converter(`
		SELECT id, email, is_active, subscribed_at
		FROM newsletter_subscriptions
		WHERE email = ?
	`)

	err := s.DB.Get(&sub, query, email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return &sub, nil
}

func (s *BaseStore) ReactivateSubscription(email string, subscribedAt int64) error {
	query := s.Converter(`
		UPDATE newsletter_subscriptions
		SET is_active = TRUE, subscribed_at = ?
		WHERE email = ?
	`)

	if _, err := s.DB.Exec(query, subscribedAt, email); err != nil {
		return fmt.Errorf("failed to reactivate subscription: %w", err)
	}
	return nil
}

func (s *BaseStore) CreateContactMessage(msg *models.ContactMessage) error {
	_, err := s.DB.NamedExec(`
		INSERT INTO contact_messages (contact_name, contact_email, contact_subject, contact_message, is_read, created_at)
		VALUES (:contact_name, :contact_email, :contact_subject, :contact_message, :is_read, :created_at)
	`, msg)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (s *BaseStore) ListEvents() ([]models.Event, error) {
	var events []models.Event
	err := s.DB.Select(&events, `
		SELECT id, title, description, date, location, created_at
		FROM events
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *BaseStore) FetchOverviewStats() (*OverviewStats, error) {
	var stats OverviewStats
	err := s.DB.Get(&stats, `
		SELECT
			(SELECT COUNT(*) FROM applications) AS total_applications,
			(SELECT COUNT(*) FROM applications WHERE status = 'pending') AS pending_applications,
			(SELECT COUNT(*) FROM applications WHERE status = 'approved') AS approved_applications,
			(SELECT COUNT(*) FROM contact_messages) AS total_contacts,
			(SELECT COUNT(*) FROM newsletter_subscriptions WHERE is_active = TRUE) AS active_subscribers,
			(SELECT COUNT(*) FROM events) AS total_events
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overview stats: %w", err)
	}
	return &stats, nil
}
