// Package redis provides the Redis connection used by the settings store.
// This is part of the platform layer and contains no business logic.
package redis

import (
	"context"
	"fmt"
	"time"

	"dhl_location_finder/platform/config"

	goredis "github.com/redis/go-redis/v9"
)

// NewClient parses REDIS_URL, connects and pings the server.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := goredis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}
