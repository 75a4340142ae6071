// Package service provides business logic for the location finder settings.
package service

import (
	"context"
	"strings"

	"dhl_location_finder/internal/settings/repository"
	"dhl_location_finder/internal/settings/transport"
	"dhl_location_finder/platform/apperr"
	"dhl_location_finder/platform/logger"
	"dhl_location_finder/platform/validator"
)

const apiKeyHintLen = 4

// Service reads and writes the DHL API key.
type Service struct {
	repo repository.Repository
	val  *validator.Validator
	log  *logger.Logger
}

// New creates a new settings service.
func New(repo repository.Repository, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{repo: repo, val: val, log: log}
}

// APIKey returns the stored key as saved, or "" when none is configured.
func (s *Service) APIKey(ctx context.Context) (string, error) {
	value, ok, err := s.repo.Get(ctx, repository.Namespace, repository.KeyAPIKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return value, nil
}

// Get describes the current settings.
func (s *Service) Get(ctx context.Context) (transport.SettingsResponse, error) {
	key, err := s.APIKey(ctx)
	if err != nil {
		s.log.WithContext(ctx).DatabaseError("load settings", err)
		return transport.SettingsResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load settings", err).WithOp("settings.Get")
	}
	return toResponse(key), nil
}

// SaveAPIKey validates and stores a new API key.
func (s *Service) SaveAPIKey(ctx context.Context, req transport.UpdateSettingsRequest) (transport.SettingsResponse, error) {
	if err := s.val.Struct(req); err != nil {
		return transport.SettingsResponse{}, apperr.Validation("API Key field is required.").
			WithDetails(validator.FieldErrors(err))
	}

	key := strings.TrimSpace(req.APIKey)
	if err := s.repo.Set(ctx, repository.Namespace, repository.KeyAPIKey, key); err != nil {
		s.log.WithContext(ctx).DatabaseError("save settings", err)
		return transport.SettingsResponse{}, apperr.Wrap(apperr.KindInternal, "failed to save settings", err).WithOp("settings.SaveAPIKey")
	}

	s.log.WithContext(ctx).Info("dhl api key updated")
	return toResponse(key), nil
}

func toResponse(key string) transport.SettingsResponse {
	if key == "" {
		return transport.SettingsResponse{}
	}
	resp := transport.SettingsResponse{APIKeyConfigured: true}
	// Short keys get no hint; the suffix would give most of them away.
	if len(key) > 2*apiKeyHintLen {
		resp.APIKeyHint = key[len(key)-apiKeyHintLen:]
	}
	return resp
}
