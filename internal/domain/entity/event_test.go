package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_IsOnline(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{
			name:  "zero coordinates regardless of location text",
			event: Event{Location: "Main Green", Latitude: 0, Longitude: 0},
			want:  true,
		},
		{
			name:  "virtual marker with real coordinates",
			event: Event{Location: "Join us (virtual)", Latitude: 41.83, Longitude: -71.4},
			want:  true,
		},
		{
			name:  "online only marker",
			event: Event{Location: "Online Only", Latitude: 41.83, Longitude: -71.4},
			want:  true,
		},
		{
			name:  "location exactly online",
			event: Event{Location: "online", Latitude: 41.83, Longitude: -71.4},
			want:  true,
		},
		{
			name:  "physical venue with coordinates",
			event: Event{Location: "Main Green", Latitude: 41.8262, Longitude: -71.4032},
			want:  false,
		},
		{
			name:  "one zero coordinate",
			event: Event{Location: "Sayles Hall", Latitude: 41.8262, Longitude: 0},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.IsOnline())
		})
	}
}

func TestEvent_HasValidCoordinates(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lng  float64
		want bool
	}{
		{name: "nan latitude", lat: math.NaN(), lng: 5, want: false},
		{name: "zero latitude", lat: 0, lng: 5, want: false},
		{name: "zero longitude", lat: 10, lng: 0, want: false},
		{name: "infinite longitude", lat: 10, lng: math.Inf(1), want: false},
		{name: "valid", lat: 10, lng: 5, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := Event{Latitude: tt.lat, Longitude: tt.lng}
			assert.Equal(t, tt.want, event.HasValidCoordinates())
		})
	}
}

func TestShortCategoryName(t *testing.T) {
	assert.Equal(t, "Arts", ShortCategoryName("Arts, Performance"))
	assert.Equal(t, "Libraries", ShortCategoryName("Libraries"))
}

func TestCategoryColor(t *testing.T) {
	assert.Equal(t, "#e83e8c", CategoryColor([]string{"Arts, Performance"}))
	assert.Equal(t, defaultCategoryColor, CategoryColor(nil))
	assert.Equal(t, defaultCategoryColor, CategoryColor([]string{"Underwater Basket Weaving"}))
}

func TestFormatCategories(t *testing.T) {
	assert.Equal(t, "Arts, Athletics", FormatCategories([]string{"Arts, Performance", "Athletics, Sports, Wellness"}))
	assert.Equal(t, "Uncategorized", FormatCategories(nil))
}
