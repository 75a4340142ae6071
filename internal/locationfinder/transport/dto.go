// Package transport provides DTOs for the location finder domain.
package transport

// SearchQuery is the visitor's search, bound from the page form or API query string.
// Fields are only checked for emptiness and reach the upstream APIs as submitted.
type SearchQuery struct {
	Country    string `form:"country" json:"country" validate:"required"`
	City       string `form:"city" json:"city" validate:"required"`
	PostalCode string `form:"postCode" json:"postCode" validate:"required"`
}

// Address is the provider's place.address object.
type Address struct {
	CountryCode     string `json:"countryCode"`
	PostalCode      string `json:"postalCode"`
	AddressLocality string `json:"addressLocality"`
	StreetAddress   string `json:"streetAddress"`
}

// Place wraps the address of a raw location.
type Place struct {
	Address Address `json:"address"`
}

// OpeningHoursEntry is one provider opening-hours record.
// DayOfWeek is a schema.org URI such as "http://schema.org/Monday".
type OpeningHoursEntry struct {
	DayOfWeek string `json:"dayOfWeek"`
	Opens     string `json:"opens"`
	Closes    string `json:"closes"`
}

// RawLocation is one pickup point as returned by the DHL Location Finder API.
type RawLocation struct {
	URL          string              `json:"url"`
	Name         string              `json:"name"`
	Place        Place               `json:"place"`
	OpeningHours []OpeningHoursEntry `json:"openingHours"`
}

// FilteredLocation is a location that passed the ID parity and weekend filters.
type FilteredLocation struct {
	LocationName string       `json:"locationName"`
	Address      Address      `json:"address"`
	OpeningHours OpeningHours `json:"openingHours"`
}

// SearchResponse is the JSON body of a successful search.
type SearchResponse struct {
	Outcome     string             `json:"outcome"`
	CountryCode string             `json:"countryCode"`
	Locations   []FilteredLocation `json:"locations"`
	Message     string             `json:"message,omitempty"`
}
