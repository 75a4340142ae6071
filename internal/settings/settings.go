// Package settings provides the location finder settings bounded context.
// This file defines its public API; other domains import only what is declared here.
package settings

import "context"

// FormPath is the admin page where the DHL API key is configured.
const FormPath = "/admin/config/services/dhl-settings"

// APIKeyReader exposes the configured DHL API key to other domains.
type APIKeyReader interface {
	// APIKey returns the stored key, or "" when none has been saved yet.
	APIKey(ctx context.Context) (string, error)
}
