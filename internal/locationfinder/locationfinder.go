// Package locationfinder provides the DHL location search bounded context.
// This file defines the public interface exposed to other domains and entrypoints.
package locationfinder

import (
	"context"

	"dhl_location_finder/internal/locationfinder/service"
	"dhl_location_finder/internal/locationfinder/transport"
)

// PagePath is the public search page.
const PagePath = "/dhl-location-finder"

// Searcher runs one location search to a terminal outcome.
type Searcher interface {
	Search(ctx context.Context, query transport.SearchQuery) service.Result
}
