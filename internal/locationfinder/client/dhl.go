package client

import (
	"context"
	"net/http"
	"net/url"

	"dhl_location_finder/internal/locationfinder/transport"
)

const (
	// DHLUpstream names the DHL Location Finder API in errors and logs.
	DHLUpstream = "dhl"

	findByAddressPath = "/location-finder/v1/find-by-address"
	apiKeyHeader      = "DHL-API-Key"
)

type findByAddressResponse struct {
	Locations []transport.RawLocation `json:"locations"`
}

// DHLClient calls the DHL Location Finder API.
type DHLClient struct {
	doer    Doer
	baseURL string
}

// NewDHLClient creates a client for the API rooted at baseURL.
func NewDHLClient(doer Doer, baseURL string) *DHLClient {
	return &DHLClient{doer: doer, baseURL: baseURL}
}

// FindByAddress returns the locations near the address, in provider order.
func (c *DHLClient) FindByAddress(ctx context.Context, countryCode, city, postalCode, apiKey string) ([]transport.RawLocation, error) {
	params := url.Values{}
	params.Set("countryCode", countryCode)
	params.Set("addressLocality", city)
	params.Set("postalCode", postalCode)

	header := http.Header{}
	header.Set(apiKeyHeader, apiKey)

	var resp findByAddressResponse
	if err := getJSON(ctx, c.doer, DHLUpstream, c.baseURL+findByAddressPath, params, header, &resp); err != nil {
		return nil, err
	}
	return resp.Locations, nil
}
