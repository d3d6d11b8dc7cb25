package util

import (
	"time"

	"github.com/pkg/errors"
)

// eventTimeLayouts are the parse strategies for backend start times, in
// order: ISO-8601 with zone, ISO-8601 without zone, then the scraper's
// "YYYY-MM-DD HH:MM:SS" form.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ErrUnparseableTime is returned when no parse strategy accepts the input.
var ErrUnparseableTime = errors.New("unparseable event time")

// ParseEventTime parses a backend start-time string, trying each layout in
// order. Callers must handle the error case explicitly; there is no silent
// fallback to the raw string here.
func ParseEventTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, ErrUnparseableTime
	}

	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Wrapf(ErrUnparseableTime, "%q", value)
}

// FormatEventTime renders a start time for detail views, e.g.
// "Apr 26, 2025 11:59 PM". Unparseable input is returned unchanged so the
// UI can still display whatever the backend sent.
func FormatEventTime(value string) string {
	t, err := ParseEventTime(value)
	if err != nil {
		return value
	}

	return t.Format("Jan 2, 2006 3:04 PM")
}

// FormatEventTimeCompact renders a start time for cards, e.g.
// "Apr 26, 11:59 PM". Unparseable input is returned unchanged.
func FormatEventTimeCompact(value string) string {
	t, err := ParseEventTime(value)
	if err != nil {
		return value
	}

	return t.Format("Jan 2, 3:04 PM")
}
