package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shrimpsizemoose/trekker/logger"
)

// StatsCache is a read-through cache for the /api/stats payload. With no
// redis_url configured it stays disabled and every call recomputes.
type StatsCache struct {
	enabled bool
	redis   *redis.Client
	key     string
	ttl     time.Duration
}

func NewStatsCache(config *Config) (*StatsCache, error) {
	if config.Cache.RedisURL == "" {
		return &StatsCache{enabled: false}, nil
	}

	opt, err := redis.ParseURL(config.Cache.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &StatsCache{
		enabled: true,
		redis:   client,
		key:     config.Cache.StatsKey,
		ttl:     time.Duration(config.Cache.TTLSeconds) * time.Second,
	}, nil
}

func (c *StatsCache) Fetch(ctx context.Context) (*StatsPayload, bool) {
	if c == nil || !c.enabled {
		return nil, false
	}

	raw, err := c.redis.Get(ctx, c.key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Debug.Printf("Redis error on stats fetch: %v", err)
		return nil, false
	}

	var payload StatsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		logger.Debug.Printf("Dropping malformed cached stats: %v", err)
		return nil, false
	}
	return &payload, true
}

func (c *StatsCache) Put(ctx context.Context, payload *StatsPayload) error {
	if c == nil || !c.enabled {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal stats payload: %w", err)
	}
	return c.redis.Set(ctx, c.key, raw, c.ttl).Err()
}

func (c *StatsCache) Close() error {
	if c == nil || c.redis == nil {
		return nil
	}
	return c.redis.Close()
}
