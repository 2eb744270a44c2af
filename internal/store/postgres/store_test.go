package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bciai-club/clubdesk/internal/models"
	"github.com/bciai-club/clubdesk/internal/store"
)

// setupTestDB spins up a throwaway postgres container. Needs docker, so
// the suite is opt-in via CLUBDESK_TEST_POSTGRES=1.
func setupTestDB(t *testing.T) (*PostgresStore, func()) {
	if os.Getenv("CLUBDESK_TEST_POSTGRES") == "" {
		t.Skip("set CLUBDESK_TEST_POSTGRES=1 to run postgres store tests")
	}

	ctx := context.Background()

	container, err := pgcontainer.Run(
		ctx,
		"postgres:16-alpine",
		testcontainers.WithEnv(map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
		}),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "Failed to start postgres container")

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get connection string")

	s, err := NewPostgresStore(dsn)
	require.NoError(t, err, "Failed to create store")

	err = s.ApplyMigrations("../../../migrations")
	require.NoError(t, err, "Failed to apply migrations")

	cleanup := func() {
		s.Close()
		container.Terminate(ctx)
	}

	return s, cleanup
}

func TestPostgresApplicationLifecycle(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC).Unix()
	app := &models.Application{
		Name:            "Zhang",
		StudentID:       "2021001",
		Email:           "z@x.com",
		Phone:           "138",
		Major:           "CS",
		Position:        "dev",
		Interests:       "bci,ai",
		Skills:          "Python",
		Status:          models.StatusPending,
		InterviewStatus: models.InterviewNotScheduled,
		CreatedAt:       now,
	}

	require.NoError(t, s.CreateApplication(app))
	assert.NotZero(t, app.ID, "RETURNING id should assign the id")

	got, err := s.GetApplication(app.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "bci,ai", got.Interests)

	approved := models.StatusApproved
	found, err := s.UpdateApplication(app.ID, models.ApplicationStatusPatch{Status: &approved})
	require.NoError(t, err)
	assert.True(t, found)

	got, err = s.GetApplication(app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)
	assert.Equal(t, models.InterviewNotScheduled, got.InterviewStatus)
}

func TestPostgresSubscriptionUniqueConstraint(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now().UTC().Unix()
	require.NoError(t, s.CreateSubscription(&models.NewsletterSubscription{
		Email: "a@x.com", IsActive: true, SubscribedAt: now,
	}))

	err := s.CreateSubscription(&models.NewsletterSubscription{
		Email: "a@x.com", IsActive: true, SubscribedAt: now,
	})
	require.ErrorIs(t, err, store.ErrDuplicateEmail)
}
