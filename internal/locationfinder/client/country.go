package client

import (
	"context"
	"fmt"
	"net/url"
)

// CountryUpstream names the country-codes catalog in errors and logs.
const CountryUpstream = "opendatasoft"

// CountryCodeResult is the catalog's records response, reduced to what the lookup reads.
type CountryCodeResult struct {
	TotalCount int `json:"total_count"`
	Results    []struct {
		ISO2Code string `json:"iso2_code"`
	} `json:"results"`
}

// ISO2 returns the code of the first match. ok is false when the catalog matched nothing.
func (r CountryCodeResult) ISO2() (string, bool) {
	if r.TotalCount == 0 || len(r.Results) == 0 {
		return "", false
	}
	return r.Results[0].ISO2Code, true
}

// CountryClient resolves English country names to ISO 3166-1 alpha-2 codes.
type CountryClient struct {
	doer     Doer
	endpoint string
}

// NewCountryClient creates a client for the catalog records endpoint.
func NewCountryClient(doer Doer, endpoint string) *CountryClient {
	return &CountryClient{doer: doer, endpoint: endpoint}
}

// LookupISO2 returns the ISO2 code of the country whose English label matches country.
// A catalog without a match is reported as found == false, not as an error.
func (c *CountryClient) LookupISO2(ctx context.Context, country string) (string, bool, error) {
	params := url.Values{}
	params.Set("select", "iso2_code")
	params.Set("where", fmt.Sprintf("label_en like %q", country))
	params.Set("limit", "1")

	var result CountryCodeResult
	if err := getJSON(ctx, c.doer, CountryUpstream, c.endpoint, params, nil, &result); err != nil {
		return "", false, err
	}

	code, ok := result.ISO2()
	return code, ok, nil
}
