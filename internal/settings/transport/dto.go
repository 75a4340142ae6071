// Package transport provides DTOs for the settings domain.
package transport

// UpdateSettingsRequest is the settings form / JSON payload.
type UpdateSettingsRequest struct {
	APIKey string `json:"apiKey" form:"api_key" validate:"notblank"`
}

// SettingsResponse describes the stored settings without exposing the full key.
type SettingsResponse struct {
	APIKeyConfigured bool   `json:"apiKeyConfigured"`
	APIKeyHint       string `json:"apiKeyHint,omitempty"` // last characters of the key
}
