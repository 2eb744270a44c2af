package app

import (
	"fmt"
	"time"

	"github.com/bciai-club/clubdesk/internal/store"
)

type Service struct {
	Config *Config
	Store  store.ClubStore
	Cache  *StatsCache

	// now is overridable in tests; timestamps are UTC unix seconds
	now func() int64
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := NewStore(config.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	cache, err := NewStatsCache(config)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to init stats cache: %w", err)
	}

	return &Service{
		Config: config,
		Store:  store,
		Cache:  cache,
	}, nil
}

func (s *Service) timestamp() int64 {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC().Unix()
}

func (s *Service) formatTimestamp(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(s.Config.Display.TimestampFormat)
}

func (s *Service) Close() error {
	var errs []error

	if err := s.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store: %w", err))
	}
	if err := s.Cache.Close(); err != nil {
		errs = append(errs, fmt.Errorf("cache: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors while closing: %v", errs)
	}
	return nil
}
