package app

import (
	"strings"

	"github.com/bciai-club/clubdesk/internal/store"
	"github.com/bciai-club/clubdesk/internal/store/postgres"
	"github.com/bciai-club/clubdesk/internal/store/sqlite"
)

func NewStore(dsn string) (store.ClubStore, error) {
	if strings.HasPrefix(dsn, "postgres") {
		return postgres.NewPostgresStore(dsn)
	}
	return sqlite.NewSQLiteStore(dsn)
}
