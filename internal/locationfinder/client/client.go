// Package client provides the HTTP clients for the opendatasoft country-codes
// catalog and the DHL Location Finder API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// maxResponseBytes caps how much of an upstream body is decoded.
const maxResponseBytes = 4 << 20

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient returns the outbound client shared by both upstream clients.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Upstream   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Upstream, e.StatusCode)
}

// getJSON performs a GET and decodes a 2xx JSON body into out.
func getJSON(ctx context.Context, doer Doer, upstream, endpoint string, params url.Values, header http.Header, out any) error {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", upstream, err)
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := doer.Do(req)
	if err != nil {
		return fmt.Errorf("%s: http request: %w", upstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return &StatusError{Upstream: upstream, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", upstream, err)
	}
	return nil
}
