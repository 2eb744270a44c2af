package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/bciai-club/clubdesk/internal/models"
	"github.com/bciai-club/clubdesk/internal/store"
)

const uniqueViolation = "23505"

type PostgresStore struct {
	store.BaseStore
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &PostgresStore{BaseStore: store.BaseStore{
		DB: db,
		Converter: func(query string) string {
			out := query
			for i := 1; strings.Contains(out, "?"); i++ {
				out = strings.Replace(out, "?", fmt.Sprintf("$%d", i), 1)
			}
			return out
		},
	}}

	return s, nil
}

func (s *PostgresStore) ApplyMigrations(dir string) error {
	return s.BaseStore.ApplyMigrations(dir, nil)
}

func (s *PostgresStore) CreateApplication(app *models.Application) error {
	rows, err := s.DB.NamedQuery(`
		INSERT INTO applications (
			name, student_id, email, phone, major, grade, position,
			interests, skills, team_preference, experience, reason,
			available_time, github_url, other_info,
			status, interview_status, interview_notes, created_at
		) VALUES (
			:name, :student_id, :email, :phone, :major, :grade, :position,
			:interests, :skills, :team_preference, :experience, :reason,
			:available_time, :github_url, :other_info,
			:status, :interview_status, :interview_notes, :created_at
		)
		RETURNING id
	`, app)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&app.ID); err != nil {
			return fmt.Errorf("failed to scan application id: %w", err)
		}
	}
	return rows.Err()
}

func (s *PostgresStore) CreateSubscription(sub *models.NewsletterSubscription) error {
	rows, err := s.DB.NamedQuery(`
		INSERT INTO newsletter_subscriptions (email, is_active, subscribed_at)
		VALUES (:email, :is_active, :subscribed_at)
		RETURNING id
	`, sub)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return store.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&sub.ID); err != nil {
			return fmt.Errorf("failed to scan subscription id: %w", err)
		}
	}
	return rows.Err()
}
