// Command find-locations runs one DHL location search and prints the result as JSON.
//
// Usage:
//
//	find-locations -country Germany -city Bonn -postcode 53113 [-api-key KEY]
//
// Without -api-key the key is read from the configured settings store.
// The exit code is 0 only when the search reached the found outcome.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dhl_location_finder/internal/locationfinder"
	"dhl_location_finder/internal/locationfinder/service"
	"dhl_location_finder/internal/locationfinder/transport"
	"dhl_location_finder/internal/settings"
	settingssvc "dhl_location_finder/internal/settings/service"
	"dhl_location_finder/platform/config"
	"dhl_location_finder/platform/logger"
	"dhl_location_finder/platform/sanitize"
	"dhl_location_finder/platform/validator"
)

type staticAPIKey string

func (k staticAPIKey) APIKey(context.Context) (string, error) {
	return string(k), nil
}

type output struct {
	Outcome     string                       `json:"outcome"`
	Query       transport.SearchQuery        `json:"query"`
	CountryCode string                       `json:"countryCode,omitempty"`
	Locations   []transport.FilteredLocation `json:"locations,omitempty"`
	Message     string                       `json:"message,omitempty"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var query transport.SearchQuery
	flag.StringVar(&query.Country, "country", "", "country name in English, e.g. Germany")
	flag.StringVar(&query.City, "city", "", "city")
	flag.StringVar(&query.PostalCode, "postcode", "", "postal code")
	apiKey := flag.String("api-key", "", "DHL API key (defaults to the stored key)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		return 2
	}
	// Diagnostics go to stderr so stdout stays valid JSON.
	log := logger.NewWithWriter(cfg.Env, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var keys service.APIKeyReader = staticAPIKey(*apiKey)
	if *apiKey == "" {
		repo, closeSettings, err := settings.OpenRepository(ctx, cfg, log)
		if err != nil {
			log.Error("failed to open settings store", "error", err)
			return 2
		}
		defer closeSettings()
		keys = settingssvc.New(repo, validator.New(), log)
	}

	svc := locationfinder.NewService(cfg, keys, validator.New(), log, settings.FormPath)
	result := svc.Search(ctx, query)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output{
		Outcome:     string(result.Outcome),
		Query:       result.Query,
		CountryCode: result.CountryCode,
		Locations:   result.Locations,
		Message:     sanitize.StripHTML(result.Message),
	}); err != nil {
		log.Error("failed to write result", "error", err)
		return 2
	}

	if result.Outcome != service.OutcomeFound {
		return 1
	}
	return 0
}
