package service

import (
	"strings"
	"unicode/utf8"

	"dhl_location_finder/internal/locationfinder/transport"
)

// Both prefix lengths depend on the DHL response format: location URLs look like
// "/locations/<id>" and days like "http://schema.org/Monday". A format change on the
// provider side silently breaks ID parity and day extraction.
const (
	locationURLPrefixLen = 11
	dayOfWeekPrefixLen   = 18
)

var weekendDays = []string{"Saturday", "Sunday"}

// FilterLocations keeps locations with an even-length ID that open on both weekend days.
// Survivors keep their input order. The function has no side effects.
func FilterLocations(raw []transport.RawLocation) []transport.FilteredLocation {
	filtered := make([]transport.FilteredLocation, 0, len(raw))
	for _, loc := range raw {
		if utf8.RuneCountInString(locationID(loc.URL))%2 != 0 {
			continue
		}

		hours := openingHours(loc.OpeningHours)
		if !opensOnWeekends(hours) {
			continue
		}

		filtered = append(filtered, transport.FilteredLocation{
			LocationName: loc.Name,
			Address:      loc.Place.Address,
			OpeningHours: hours,
		})
	}
	return filtered
}

// locationID strips the URL prefix. IDs of the form "<a>-<b>" yield b.
// A dash in first position does not count as a separator.
func locationID(url string) string {
	id := stripPrefix(url, locationURLPrefixLen)
	if strings.Index(id, "-") > 0 {
		id = strings.Split(id, "-")[1]
	}
	return id
}

func openingHours(entries []transport.OpeningHoursEntry) transport.OpeningHours {
	var hours transport.OpeningHours
	for _, entry := range entries {
		hours.Set(stripPrefix(entry.DayOfWeek, dayOfWeekPrefixLen), entry.Opens+" - "+entry.Closes)
	}
	return hours
}

func opensOnWeekends(hours transport.OpeningHours) bool {
	for _, day := range weekendDays {
		if !hours.Has(day) {
			return false
		}
	}
	return true
}

func stripPrefix(s string, n int) string {
	if len(s) <= n {
		return ""
	}
	return s[n:]
}
