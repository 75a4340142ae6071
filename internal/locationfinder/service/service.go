// Package service provides the location search business logic.
package service

import (
	"context"
	"fmt"

	"dhl_location_finder/internal/locationfinder/client"
	"dhl_location_finder/internal/locationfinder/transport"
	"dhl_location_finder/platform/apperr"
	"dhl_location_finder/platform/logger"
	"dhl_location_finder/platform/validator"
)

// Outcome is the terminal state of one search.
type Outcome string

const (
	OutcomeConfigurationMissing Outcome = "configuration_missing"
	OutcomeAwaitingInput        Outcome = "awaiting_input"
	OutcomeCountryNotFound      Outcome = "country_not_found"
	OutcomeFailure              Outcome = "failure"
	OutcomeFound                Outcome = "found"
)

const (
	msgConfigurationMissing = "Please add your DHL api key at <a href='%s'>DHL api configuration</a> to access this application. If you do not have access to given link please contact administrator."
	msgAwaitingInput        = "Country, city and postal code are required."
	msgCountryNotFound      = "System can not find country '%s'. Please check if you have entered correct country."
	msgFailure              = "System encounter an issue. Please check logs for more information."
	msgNoOffices            = "No offices found of given location. Please change your search parameters to update results."
)

// APIKeyReader provides the configured DHL API key.
type APIKeyReader interface {
	APIKey(ctx context.Context) (string, error)
}

// CountryResolver maps a country name to its ISO2 code.
type CountryResolver interface {
	LookupISO2(ctx context.Context, country string) (string, bool, error)
}

// LocationFetcher queries the DHL Location Finder API.
type LocationFetcher interface {
	FindByAddress(ctx context.Context, countryCode, city, postalCode, apiKey string) ([]transport.RawLocation, error)
}

// Result describes a finished search. Err is nil only for OutcomeFound.
type Result struct {
	Outcome     Outcome
	Query       transport.SearchQuery
	CountryCode string
	Locations   []transport.FilteredLocation
	Message     string
	Err         *apperr.Error
}

// Service runs location searches.
type Service struct {
	keys        APIKeyReader
	countries   CountryResolver
	locations   LocationFetcher
	val         *validator.Validator
	log         *logger.Logger
	settingsURL string
}

// New creates a new location search service. settingsURL is linked from the
// configuration prompt.
func New(keys APIKeyReader, countries CountryResolver, locations LocationFetcher, val *validator.Validator, log *logger.Logger, settingsURL string) *Service {
	return &Service{
		keys:        keys,
		countries:   countries,
		locations:   locations,
		val:         val,
		log:         log,
		settingsURL: settingsURL,
	}
}

// Search resolves the country, fetches nearby locations and filters them.
// Every step gates the next one; no upstream is called once a step has failed.
func (s *Service) Search(ctx context.Context, query transport.SearchQuery) Result {
	result := Result{Query: query}
	log := s.log.WithContext(ctx)

	apiKey, err := s.keys.APIKey(ctx)
	if err != nil {
		log.DatabaseError("read dhl api key", err)
		return result.fail(OutcomeFailure, apperr.Wrap(apperr.KindInternal, msgFailure, err).WithOp("locationfinder.Search"))
	}
	if apiKey == "" {
		return result.fail(OutcomeConfigurationMissing, apperr.Unavailable(fmt.Sprintf(msgConfigurationMissing, s.settingsURL)))
	}

	if err := s.val.Struct(query); err != nil {
		return result.fail(OutcomeAwaitingInput, apperr.Validation(msgAwaitingInput).WithDetails(validator.FieldErrors(err)))
	}

	countryCode, found, err := s.countries.LookupISO2(ctx, query.Country)
	if err != nil {
		log.UpstreamError(client.CountryUpstream, "lookup country", err)
		return result.fail(OutcomeFailure, apperr.Upstream(msgFailure, err).WithOp("locationfinder.Search"))
	}
	if !found {
		return result.fail(OutcomeCountryNotFound, apperr.NotFound(fmt.Sprintf(msgCountryNotFound, query.Country)))
	}
	result.CountryCode = countryCode

	raw, err := s.locations.FindByAddress(ctx, countryCode, query.City, query.PostalCode, apiKey)
	if err != nil {
		log.UpstreamError(client.DHLUpstream, "find by address", err)
		return result.fail(OutcomeFailure, apperr.Upstream(msgFailure, err).WithOp("locationfinder.Search"))
	}

	result.Outcome = OutcomeFound
	result.Locations = FilterLocations(raw)
	if len(result.Locations) == 0 {
		result.Message = msgNoOffices
	}
	log.Debug("location search finished", "country_code", countryCode, "received", len(raw), "kept", len(result.Locations))
	return result
}

func (r Result) fail(outcome Outcome, err *apperr.Error) Result {
	r.Outcome = outcome
	r.Message = err.Message
	r.Err = err
	return r
}
