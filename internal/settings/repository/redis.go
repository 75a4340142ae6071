package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "settings:"

// Redis implements Repository with one hash per namespace.
type Redis struct {
	client redis.UniversalClient
}

// NewRedis creates a settings repository backed by Redis.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

var _ Repository = (*Redis)(nil)

// Get retrieves a setting value.
func (r *Redis) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	value, err := r.client.HGet(ctx, redisKeyPrefix+namespace, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get setting %s.%s: %w", namespace, key, err)
	}
	return value, true, nil
}

// Set stores a setting value.
func (r *Redis) Set(ctx context.Context, namespace, key, value string) error {
	if err := r.client.HSet(ctx, redisKeyPrefix+namespace, key, value).Err(); err != nil {
		return fmt.Errorf("set setting %s.%s: %w", namespace, key, err)
	}
	return nil
}

// Ping checks the Redis connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
