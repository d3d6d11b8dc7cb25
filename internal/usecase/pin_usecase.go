package usecase

import (
	"context"

	"campusmap/internal/domain/entity"
)

// PinUsecase is the local pin cache mirrored against the remote pin store.
//
// Mutating operations (AddPin, ClearUserPins) propagate remote failures to
// the caller and are never retried. Read-refresh operations (UserPins,
// RefreshAll) trade freshness for availability: on remote failure they fall
// back to the cache's current snapshot instead of erroring.
type PinUsecase interface {
	// AddPin creates a pin for the user at the given coordinates, inserts
	// it into the cache and refreshes that user's pins from the store.
	AddPin(ctx context.Context, userID string, lat, lng float64) (*entity.Pin, error)

	// UserPins refreshes the user's partition of the cache from the store
	// (delete-then-insert, other users untouched) and returns the full
	// cache contents.
	UserPins(ctx context.Context, userID string) []entity.Pin

	// RefreshAll replaces the entire cache with the store's global pin set
	// and returns the full cache contents.
	RefreshAll(ctx context.Context) []entity.Pin

	// ClearUserPins deletes the user's pins remotely, then locally. The
	// cache is left untouched when the remote call fails.
	ClearUserPins(ctx context.Context, userID string) error

	// AllPins returns a snapshot of the cache without touching the network.
	AllPins() []entity.Pin
}
