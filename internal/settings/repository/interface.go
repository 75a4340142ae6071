// Package repository persists application settings as namespaced key/value pairs.
package repository

import "context"

// Namespace and keys of the location finder settings.
const (
	Namespace = "dhl_location_finder.settings"
	KeyAPIKey = "api_key"
)

// Reader provides read access to settings.
type Reader interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, namespace, key string) (string, bool, error)
}

// Writer provides write access to settings.
type Writer interface {
	Set(ctx context.Context, namespace, key, value string) error
}

// Repository combines all settings repository operations.
type Repository interface {
	Reader
	Writer
	// Ping checks the backing store for readiness checks.
	Ping(ctx context.Context) error
}
