package entity

import (
	"math"
	"strings"
)

// onlineLocationMarkers are the location-text fragments that mark an event
// as having no physical venue.
var onlineLocationMarkers = []string{"online only", "online-only", "virtual"}

// Event is the canonical event record. Raw backend payloads use two naming
// conventions across revisions (event_id vs eventId, liked_count vs
// likedCount); both are normalized in the eventapi package before an Event
// reaches any of the logic here.
type Event struct {
	EventID     string   `json:"event_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Categories  []string `json:"categories"`
	Link        string   `json:"link,omitempty"`

	// StartTime is kept as the raw backend string; parsing is handled by
	// util.ParseEventTime so callers deal with the unparseable case
	// explicitly.
	StartTime string `json:"start_time"`

	LikedCount    int     `json:"liked_count"`
	ViewedCount   int     `json:"viewed_count"`
	TrendingScore float64 `json:"trending_score"`

	// Zero is the "no location / online event" sentinel for both fields.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsOnline reports whether the event has no physical attendance location,
// detected via location-text heuristics or the zero coordinate sentinel.
func (e Event) IsOnline() bool {
	locationLower := strings.ToLower(e.Location)
	for _, marker := range onlineLocationMarkers {
		if strings.Contains(locationLower, marker) {
			return true
		}
	}
	if locationLower == "online" {
		return true
	}

	return e.Latitude == 0 || e.Longitude == 0
}

// HasValidCoordinates reports whether the event can be placed on the map:
// both coordinates finite and neither equal to the zero sentinel.
//
// Not the complement of IsOnline: an event with real coordinates whose
// location text says "virtual" is online yet still map-placeable.
func (e Event) HasValidCoordinates() bool {
	if math.IsNaN(e.Latitude) || math.IsNaN(e.Longitude) {
		return false
	}
	if math.IsInf(e.Latitude, 0) || math.IsInf(e.Longitude, 0) {
		return false
	}

	return e.Latitude != 0 && e.Longitude != 0
}

// PrimaryCategory returns the first category, which is treated as the
// event's main classification.
func (e Event) PrimaryCategory() string {
	if len(e.Categories) == 0 {
		return ""
	}

	return e.Categories[0]
}
