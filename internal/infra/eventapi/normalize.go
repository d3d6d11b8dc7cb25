package eventapi

import (
	"encoding/json"

	"campusmap/internal/domain/entity"
)

// rawEvent accepts both field-naming conventions the backend has shipped
// (event_id vs eventId, liked_count vs likedCount, time vs startTime).
// Normalization happens here, at the system boundary; neither convention
// leaks past this package.
type rawEvent struct {
	EventIDCamel json.RawMessage `json:"eventId"`
	EventIDSnake json.RawMessage `json:"event_id"`

	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Link        string   `json:"link"`
	Categories  []string `json:"categories"`

	StartTime string `json:"startTime"`
	Time      string `json:"time"`

	LikedCountCamel  *int     `json:"likedCount"`
	LikedCountSnake  *int     `json:"liked_count"`
	ViewedCountCamel *int     `json:"viewedCount"`
	ViewedCountSnake *int     `json:"viewed_count"`
	TrendingCamel    *float64 `json:"trendingScore"`
	TrendingSnake    *float64 `json:"trending_score"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// normalizeEvent converts a raw backend event into the canonical record,
// filling the defaults the backend sometimes omits.
func normalizeEvent(raw rawEvent) entity.Event {
	event := entity.Event{
		EventID:       idString(raw.EventIDCamel, raw.EventIDSnake),
		Name:          raw.Name,
		Description:   raw.Description,
		Location:      raw.Location,
		Link:          raw.Link,
		Categories:    raw.Categories,
		StartTime:     firstNonEmpty(raw.StartTime, raw.Time),
		LikedCount:    firstInt(raw.LikedCountCamel, raw.LikedCountSnake),
		ViewedCount:   firstInt(raw.ViewedCountCamel, raw.ViewedCountSnake),
		TrendingScore: firstFloat(raw.TrendingCamel, raw.TrendingSnake),
		Latitude:      raw.Latitude,
		Longitude:     raw.Longitude,
	}

	if event.Name == "" {
		event.Name = "Unnamed Event"
	}
	if event.Categories == nil {
		event.Categories = []string{}
	}

	return event
}

func normalizeEvents(raws []rawEvent) []entity.Event {
	events := make([]entity.Event, 0, len(raws))
	for _, raw := range raws {
		events = append(events, normalizeEvent(raw))
	}

	return events
}

// idString decodes an event id that may be a JSON string or number, in
// either naming convention, into the canonical string form.
func idString(candidates ...json.RawMessage) string {
	for _, raw := range candidates {
		if len(raw) == 0 {
			continue
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}

		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			return n.String()
		}
	}

	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func firstInt(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}

	return 0
}

func firstFloat(values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}

	return 0
}
