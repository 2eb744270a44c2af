// internal/store/sqlite/store.go
package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/bciai-club/clubdesk/internal/models"
	"github.com/bciai-club/clubdesk/internal/store"
)

type SQLiteStore struct {
	store.BaseStore
}

func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &SQLiteStore{BaseStore: store.BaseStore{
		DB: db,
		Converter: func(query string) string {
			return query
		},
	}}

	return s, nil
}

func (s *SQLiteStore) ApplyMigrations(dir string) error {
	return s.BaseStore.ApplyMigrations(dir, translateToSQLite)
}

// translateToSQLite converts Postgres SQL to SQLite dialect. Pairs are
// ordered so longer patterns win over their substrings.
func translateToSQLite(sql string) string {
	replacements := [][2]string{
		{"BIGSERIAL PRIMARY KEY", "INTEGER PRIMARY KEY AUTOINCREMENT"},
		{"SERIAL PRIMARY KEY", "INTEGER PRIMARY KEY AUTOINCREMENT"},
		{"BIGINT", "INTEGER"},
		{"BOOLEAN", "INTEGER"},
		{"TRUE", "1"},
		{"FALSE", "0"},
		{"now()", "CURRENT_TIMESTAMP"},
		{"::text", ""},
	}
	result := sql
	for _, r := range replacements {
		result = strings.ReplaceAll(result, r[0], r[1])
	}
	return result
}

func (s *SQLiteStore) CreateApplication(app *models.Application) error {
	res, err := s.DB.NamedExec(`
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
	`, app)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read application id: %w", err)
	}
	app.ID = id
	return nil
}

func (s *SQLiteStore) CreateSubscription(sub *models.NewsletterSubscription) error {
	res, err := s.DB.NamedExec(`
		INSERT INTO newsletter_subscriptions (email, is_active, subscribed_at)
		VALUES (:email, :is_active, :subscribed_at)
	`, sub)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return store.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read subscription id: %w", err)
	}
	sub.ID = id
	return nil
}
