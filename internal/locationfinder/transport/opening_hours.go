package transport

import (
	"bytes"
	"encoding/json"
)

// DayHours is one day of an OpeningHours mapping.
type DayHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// OpeningHours maps day names to "opens - closes" ranges and remembers insertion order.
// The zero value is an empty mapping ready to use.
type OpeningHours struct {
	order []string
	byDay map[string]string
}

// Set stores hours for day. A day that is already present keeps its position.
func (h *OpeningHours) Set(day, hours string) {
	if h.byDay == nil {
		h.byDay = make(map[string]string)
	}
	if _, ok := h.byDay[day]; !ok {
		h.order = append(h.order, day)
	}
	h.byDay[day] = hours
}

// Get returns the hours stored for day.
func (h OpeningHours) Get(day string) (string, bool) {
	hours, ok := h.byDay[day]
	return hours, ok
}

// Has reports whether day is present.
func (h OpeningHours) Has(day string) bool {
	_, ok := h.byDay[day]
	return ok
}

// Len returns the number of days.
func (h OpeningHours) Len() int {
	return len(h.order)
}

// Days returns the day names in insertion order.
func (h OpeningHours) Days() []string {
	return append([]string(nil), h.order...)
}

// Entries returns the mapping as an ordered list, as used by the HTML page.
func (h OpeningHours) Entries() []DayHours {
	entries := make([]DayHours, 0, len(h.order))
	for _, day := range h.order {
		entries = append(entries, DayHours{Day: day, Hours: h.byDay[day]})
	}
	return entries
}

// MarshalJSON encodes the mapping as a JSON object with keys in insertion order.
func (h OpeningHours) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, day := range h.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(day)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(h.byDay[day])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
