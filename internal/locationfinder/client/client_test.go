package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestLookupISO2SendsCatalogQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("select") != "iso2_code" || q.Get("limit") != "1" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		if where := q.Get("where"); where != `label_en like "Germany"` {
			t.Errorf("unexpected where clause %q", where)
		}
		_, _ = w.Write([]byte(`{"total_count":1,"results":[{"iso2_code":"DE"}]}`))
	}))
	defer srv.Close()

	code, ok, err := NewCountryClient(srv.Client(), srv.URL).LookupISO2(context.Background(), "Germany")
	if err != nil || !ok || code != "DE" {
		t.Fatalf("expected DE, got %q ok=%v err=%v", code, ok, err)
	}
}

func TestLookupISO2NoMatch(t *testing.T) {
	for _, body := range []string{`{"total_count":0,"results":[]}`, `{"total_count":3,"results":[]}`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		_, ok, err := NewCountryClient(srv.Client(), srv.URL).LookupISO2(context.Background(), "Atlantis")
		srv.Close()
		if err != nil || ok {
			t.Fatalf("expected not found without error for %s, got ok=%v err=%v", body, ok, err)
		}
	}
}

func TestLookupISO2Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
	}{
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			status:  http.StatusInternalServerError,
		},
		{
			name:    "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{`)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, _, err := NewCountryClient(srv.Client(), srv.URL).LookupISO2(context.Background(), "Germany")
			if err == nil {
				t.Fatalf("expected error")
			}
			var statusErr *StatusError
			if tt.status != 0 && (!errors.As(err, &statusErr) || statusErr.StatusCode != tt.status) {
				t.Fatalf("expected status error %d, got %v", tt.status, err)
			}
		})
	}
}

func TestFindByAddressSendsKeyAndDecodesLocations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/location-finder/v1/find-by-address" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("DHL-API-Key"); got != "secret" {
			t.Errorf("unexpected api key header %q", got)
		}
		q := r.URL.Query()
		if q.Get("countryCode") != "DE" || q.Get("addressLocality") != "Bonn" || q.Get("postalCode") != "53113" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"locations":[
			{"url":"/locations/AB12","name":"first","place":{"address":{"countryCode":"DE","postalCode":"53113","addressLocality":"Bonn","streetAddress":"Main 1"}},
			 "openingHours":[{"dayOfWeek":"http://schema.org/Saturday","opens":"08:00:00","closes":"12:00:00"}]},
			{"url":"/locations/CD34","name":"second"}
		]}`))
	}))
	defer srv.Close()

	locs, err := NewDHLClient(srv.Client(), srv.URL).FindByAddress(context.Background(), "DE", "Bonn", "53113", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locs) != 2 || locs[0].Name != "first" || locs[1].Name != "second" {
		t.Fatalf("unexpected locations %+v", locs)
	}
	if locs[0].Place.Address.StreetAddress != "Main 1" || locs[0].OpeningHours[0].Opens != "08:00:00" {
		t.Fatalf("location not fully decoded: %+v", locs[0])
	}
}

func TestFindByAddressUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewDHLClient(srv.Client(), srv.URL).FindByAddress(context.Background(), "DE", "Bonn", "53113", "wrong")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Upstream != DHLUpstream || statusErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized status error, got %v", err)
	}
}

func TestTimeoutIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewDHLClient(NewHTTPClient(20*time.Millisecond), srv.URL).FindByAddress(context.Background(), "DE", "Bonn", "53113", "key")
	if err == nil {
		t.Fatalf("expected timeout error")
	}
}

func TestOversizedResponseIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"locations":[],"padding":"`))
		_, _ = w.Write([]byte(strings.Repeat("x", maxResponseBytes)))
		_, _ = w.Write([]byte(`"}`))
	}))
	defer srv.Close()

	_, err := NewDHLClient(srv.Client(), srv.URL).FindByAddress(context.Background(), "DE", "Bonn", "53113", "key")
	if err == nil {
		t.Fatalf("expected error for body over %d bytes", maxResponseBytes)
	}
}
