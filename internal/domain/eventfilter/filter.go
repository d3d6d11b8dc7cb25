package eventfilter

import (
	"slices"
	"strings"
	"time"

	"campusmap/internal/domain/entity"
	"campusmap/internal/util"

	"github.com/paulmach/orb"
)

// Special Criteria.Location values routed through the online predicate
// instead of text matching.
const (
	LocationOnline   = "online"
	LocationInPerson = "in_person"
)

// locationBuckets maps named campus buckets to the location-text keywords
// that identify them, matched case-insensitively with OR semantics.
var locationBuckets = map[string][]string{
	"main_green": {"main green", "the green", "brown green"},
	"cit":        {"cit", "center for information technology", "computer science"},
	"watson":     {"watson", "watson center", "watson institute"},
	"sayles":     {"sayles", "sayles hall"},
	"pembroke":   {"pembroke", "pembroke campus", "pembroke hall"},
}

// Criteria is a set of independent filter dimensions. A zero value for any
// dimension disables it; active dimensions compose by conjunction.
type Criteria struct {
	Category   string
	Search     string
	Location   string
	Time       string
	OnlineOnly bool
}

// Apply returns the events passing every active criterion, preserving the
// input ordering. Time windows are resolved against now once per call.
func Apply(events []entity.Event, criteria Criteria, now time.Time) []entity.Event {
	window, windowActive := WindowFor(criteria.Time, now)

	matched := make([]entity.Event, 0, len(events))
	for _, event := range events {
		if !matches(event, criteria, window, windowActive) {
			continue
		}
		matched = append(matched, event)
	}

	return matched
}

func matches(event entity.Event, criteria Criteria, window Window, windowActive bool) bool {
	if criteria.OnlineOnly && !event.IsOnline() {
		return false
	}

	if !matchesLocation(event, criteria.Location) {
		return false
	}

	if criteria.Category != "" && !slices.Contains(event.Categories, criteria.Category) {
		return false
	}

	if criteria.Search != "" && !matchesSearch(event, criteria.Search) {
		return false
	}

	if windowActive {
		start, err := util.ParseEventTime(event.StartTime)
		if err != nil {
			// An event whose start time cannot be parsed is unfilterable by
			// time and is excluded while a window is active.
			return false
		}
		if !window.Contains(start) {
			return false
		}
	}

	return true
}

func matchesSearch(event entity.Event, search string) bool {
	needle := strings.ToLower(search)

	return strings.Contains(strings.ToLower(event.Name), needle) ||
		strings.Contains(strings.ToLower(event.Description), needle)
}

func matchesLocation(event entity.Event, location string) bool {
	switch location {
	case "":
		return true
	case LocationOnline:
		return event.IsOnline()
	case LocationInPerson:
		return !event.IsOnline()
	}

	locationLower := strings.ToLower(event.Location)
	if keywords, ok := locationBuckets[location]; ok {
		for _, keyword := range keywords {
			if strings.Contains(locationLower, keyword) {
				return true
			}
		}

		return false
	}

	// Unknown bucket names fall back to a direct substring match.
	return strings.Contains(locationLower, strings.ToLower(location))
}

// MapEligible returns the subset of events with valid map coordinates,
// optionally restricted to a viewport bound. It is always a subset of the
// input and preserves ordering.
func MapEligible(events []entity.Event, viewport *orb.Bound) []entity.Event {
	eligible := make([]entity.Event, 0, len(events))
	for _, event := range events {
		if !event.HasValidCoordinates() {
			continue
		}
		if viewport != nil && !viewport.Contains(orb.Point{event.Longitude, event.Latitude}) {
			continue
		}
		eligible = append(eligible, event)
	}

	return eligible
}
