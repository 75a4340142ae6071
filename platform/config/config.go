// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Settings store backends.
const (
	SettingsBackendMemory   = "memory"
	SettingsBackendPostgres = "postgres"
	SettingsBackendRedis    = "redis"
)

const (
	defaultCountryCodesAPIURL = "https://public.opendatasoft.com/api/explore/v2.1/catalog/datasets/countries-codes/records"
	defaultDHLAPIURL          = "https://api.dhl.com"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
	GetMigrationsDir() string
}

// RedisConfig provides Redis connection settings.
type RedisConfig interface {
	GetRedisURL() string
}

// SettingsConfig selects the backend of the settings store.
type SettingsConfig interface {
	GetSettingsBackend() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// AdminConfig provides the optional basic-auth credentials for admin routes.
type AdminConfig interface {
	GetAdminUsername() string
	GetAdminPassword() string
	IsAdminAuthEnabled() bool
}

// LocationFinderConfig provides the upstream endpoints used by the location finder.
type LocationFinderConfig interface {
	GetCountryCodesAPIURL() string
	GetDHLAPIURL() string
	GetOutboundHTTPTimeout() time.Duration
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                 string
	HTTPAddr            string
	SettingsBackend     string
	DatabaseURL         string
	MigrationsDir       string
	RedisURL            string
	CORSAllowAll        bool
	CORSOrigins         []string
	AdminUsername       string
	AdminPassword       string
	CountryCodesAPIURL  string
	DHLAPIURL           string
	OutboundHTTPTimeout time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string   { return c.DatabaseURL }
func (c *Config) GetMigrationsDir() string { return c.MigrationsDir }

// RedisConfig implementation
func (c *Config) GetRedisURL() string { return c.RedisURL }

// SettingsConfig implementation
func (c *Config) GetSettingsBackend() string { return c.SettingsBackend }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// AdminConfig implementation
func (c *Config) GetAdminUsername() string { return c.AdminUsername }
func (c *Config) GetAdminPassword() string { return c.AdminPassword }
func (c *Config) IsAdminAuthEnabled() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

// LocationFinderConfig implementation
func (c *Config) GetCountryCodesAPIURL() string         { return c.CountryCodesAPIURL }
func (c *Config) GetDHLAPIURL() string                  { return c.DHLAPIURL }
func (c *Config) GetOutboundHTTPTimeout() time.Duration { return c.OutboundHTTPTimeout }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		SettingsBackend:    strings.ToLower(strings.TrimSpace(getEnv("SETTINGS_BACKEND", SettingsBackendMemory))),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		MigrationsDir:      getEnv("MIGRATIONS_DIR", "migrations"),
		RedisURL:           getEnv("REDIS_URL", ""),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		AdminUsername:      getEnv("ADMIN_USERNAME", ""),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		CountryCodesAPIURL: strings.TrimRight(getEnv("COUNTRY_CODES_API_URL", defaultCountryCodesAPIURL), "/"),
		DHLAPIURL:          strings.TrimRight(getEnv("DHL_API_URL", defaultDHLAPIURL), "/"),
	}

	timeout, err := time.ParseDuration(getEnv("OUTBOUND_HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid OUTBOUND_HTTP_TIMEOUT: %w", err)
	}
	cfg.OutboundHTTPTimeout = timeout

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.SettingsBackend {
	case SettingsBackendMemory:
	case SettingsBackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when SETTINGS_BACKEND is %q", SettingsBackendPostgres)
		}
	case SettingsBackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when SETTINGS_BACKEND is %q", SettingsBackendRedis)
		}
	default:
		return fmt.Errorf("unknown SETTINGS_BACKEND %q", c.SettingsBackend)
	}
	if c.OutboundHTTPTimeout <= 0 {
		return fmt.Errorf("OUTBOUND_HTTP_TIMEOUT must be a positive duration")
	}
	if (c.AdminUsername == "") != (c.AdminPassword == "") {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set together")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
