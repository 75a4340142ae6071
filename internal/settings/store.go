package settings

import (
	"context"
	"fmt"

	"dhl_location_finder/internal/settings/repository"
	"dhl_location_finder/platform/config"
	"dhl_location_finder/platform/db"
	"dhl_location_finder/platform/logger"
	"dhl_location_finder/platform/redis"
)

// StoreConfig combines the config interfaces needed to open the settings store.
type StoreConfig interface {
	config.SettingsConfig
	config.DatabaseConfig
	config.RedisConfig
}

// OpenRepository connects the backend selected by SETTINGS_BACKEND.
// The returned func releases its connections.
func OpenRepository(ctx context.Context, cfg StoreConfig, log *logger.Logger) (repository.Repository, func(), error) {
	switch backend := cfg.GetSettingsBackend(); backend {
	case config.SettingsBackendPostgres:
		if err := db.RunMigrations(ctx, cfg); err != nil {
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		log.Info("settings store ready", "backend", backend)
		return repository.NewPostgres(pool), pool.Close, nil

	case config.SettingsBackendRedis:
		client, err := redis.NewClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		log.Info("settings store ready", "backend", backend)
		return repository.NewRedis(client), func() { _ = client.Close() }, nil

	case config.SettingsBackendMemory, "":
		log.Warn("settings store is in memory; the api key is lost on restart")
		return repository.NewMemory(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown settings backend %q", backend)
	}
}
