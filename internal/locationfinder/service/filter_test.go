package service

import (
	"encoding/json"
	"testing"

	"dhl_location_finder/internal/locationfinder/transport"
)

var (
	weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	allWeek  = append(append([]string{}, weekdays...), "Saturday", "Sunday")
)

func rawLocation(id, name string, days []string) transport.RawLocation {
	loc := transport.RawLocation{
		URL:  "/locations/" + id,
		Name: name,
		Place: transport.Place{Address: transport.Address{
			CountryCode:     "DE",
			PostalCode:      "53113",
			AddressLocality: "Bonn",
			StreetAddress:   "Charles-de-Gaulle-Str. 20",
		}},
	}
	for _, day := range days {
		loc.OpeningHours = append(loc.OpeningHours, transport.OpeningHoursEntry{
			DayOfWeek: "http://schema.org/" + day,
			Opens:     "08:00:00",
			Closes:    "18:00:00",
		})
	}
	return loc
}

func names(locs []transport.FilteredLocation) []string {
	out := make([]string, 0, len(locs))
	for _, loc := range locs {
		out = append(out, loc.LocationName)
	}
	return out
}

func TestFilterLocationsScenarios(t *testing.T) {
	tests := []struct {
		name string
		loc  transport.RawLocation
		keep bool
	}{
		{name: "even id all week", loc: rawLocation("AB12", "a", allWeek), keep: true},
		{name: "odd id", loc: rawLocation("AB123", "b", allWeek), keep: false},
		{name: "dashed id uses second segment", loc: rawLocation("12-AB", "c", allWeek), keep: true},
		{name: "dashed id with odd second segment", loc: rawLocation("1234-ABC", "d", allWeek), keep: false},
		{name: "weekdays only", loc: rawLocation("AB12", "e", weekdays), keep: false},
		{name: "saturday without sunday", loc: rawLocation("AB12", "f", append(append([]string{}, weekdays...), "Saturday")), keep: false},
		{name: "weekend only", loc: rawLocation("AB12", "g", []string{"Saturday", "Sunday"}), keep: true},
		{name: "leading dash is not a separator", loc: rawLocation("-ABC", "h", allWeek), keep: true},
		{name: "multiple dashes take second segment", loc: rawLocation("x-AB-CDE", "i", allWeek), keep: true},
		{name: "url shorter than prefix gives empty id", loc: transport.RawLocation{URL: "/loc", Name: "j", OpeningHours: rawLocation("", "", allWeek).OpeningHours}, keep: true},
		{name: "multibyte id counts characters", loc: rawLocation("éé", "k", allWeek), keep: true},
		{name: "single multibyte character is odd", loc: rawLocation("é", "l", allWeek), keep: false},
		{name: "odd characters with even bytes", loc: rawLocation("éAB", "m", allWeek), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterLocations([]transport.RawLocation{tt.loc})
			if kept := len(got) == 1; kept != tt.keep {
				t.Fatalf("expected keep=%v, got %d locations", tt.keep, len(got))
			}
		})
	}
}

func TestFilterLocationsBuildsOpeningHours(t *testing.T) {
	loc := rawLocation("AB12", "Packstation 105", nil)
	loc.OpeningHours = []transport.OpeningHoursEntry{
		{DayOfWeek: "http://schema.org/Saturday", Opens: "09:00:00", Closes: "13:00:00"},
		{DayOfWeek: "http://schema.org/Sunday", Opens: "00:00:00", Closes: "23:59:00"},
		{DayOfWeek: "http://schema.org/Saturday", Opens: "14:00:00", Closes: "16:00:00"},
	}

	got := FilterLocations([]transport.RawLocation{loc})
	if len(got) != 1 {
		t.Fatalf("expected location to be kept")
	}
	out := got[0]
	if out.LocationName != "Packstation 105" || out.Address != loc.Place.Address {
		t.Fatalf("unexpected location %+v", out)
	}
	data, _ := json.Marshal(out.OpeningHours)
	if want := `{"Saturday":"14:00:00 - 16:00:00","Sunday":"00:00:00 - 23:59:00"}`; string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}
}

func TestFilterLocationsPreservesOrderAndIsIdempotent(t *testing.T) {
	input := []transport.RawLocation{
		rawLocation("AB12", "first", allWeek),
		rawLocation("AB123", "dropped odd", allWeek),
		rawLocation("12-CD", "second", allWeek),
		rawLocation("EF34", "dropped weekdays", weekdays),
		rawLocation("GH", "third", allWeek),
	}

	first := FilterLocations(input)
	want := []string{"first", "second", "third"}
	got := names(first)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(FilterLocations(input))
	if string(a) != string(b) {
		t.Fatalf("filter is not idempotent:\n%s\n%s", a, b)
	}
}

func TestFilterLocationsEmptyInput(t *testing.T) {
	got := FilterLocations(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
