package service

import (
	"context"

	"campusmap/internal/domain/entity"
)

// PinOwnerAll is the uid value the remote pin store accepts to list every
// user's pins.
const PinOwnerAll = "all"

// AddPinResult carries the server-supplied fields of a freshly created pin.
// The store may omit the timestamp, in which case the caller synthesizes
// one client-side.
type AddPinResult struct {
	Timestamp int64
}

// PinBackend is the remote pin store. It is the source of truth for pins;
// the local cache only mirrors it. Implementations translate the store's
// wire format (the "lon" field, the response_type envelope) into entity
// records.
type PinBackend interface {
	// AddPin creates a pin for uid at the given coordinates.
	AddPin(ctx context.Context, uid string, lat, lng float64) (*AddPinResult, error)

	// ListPins returns the pins owned by uid, or every pin when uid is
	// PinOwnerAll. Pins are returned with IDs and timestamps synthesized
	// when the store omits them, and with ownership resolved.
	ListPins(ctx context.Context, uid string) ([]entity.Pin, error)

	// ClearUser deletes every pin owned by uid.
	ClearUser(ctx context.Context, uid string) error
}
