package entity

import (
	"fmt"
	"math/rand"
	"time"
)

// Pin is a user-placed geographic marker. The remote pin store names the
// longitude field "lon"; it is always renamed to Lng at the ingestion
// boundary so the rest of the codebase only ever sees Lng.
type Pin struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp int64   `json:"timestamp"` // epoch milliseconds
}

// NewPinID generates a client-side pin identifier for responses that do not
// carry one.
func NewPinID(now time.Time) string {
	return fmt.Sprintf("pin_%d", now.UnixMilli())
}

// NewRandomPinID generates a collision-resistant client-side identifier for
// batches where several pins may share the same millisecond.
func NewRandomPinID(now time.Time) string {
	return fmt.Sprintf("pin_%d_%d", now.UnixMilli(), rand.Int63())
}
