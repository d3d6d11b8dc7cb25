package usecase

import (
	"context"

	"campusmap/internal/domain/entity"
)

// EngagementUsecase tracks per-user likes and bookmarks against the
// events/user backend. Mutations are optimistic: the cached profile is
// updated before the backend call and rolled back when it fails.
type EngagementUsecase interface {
	// Profile returns the user's engagement profile, served from the local
	// cache after the first fetch.
	Profile(ctx context.Context, userID string) (*entity.UserProfile, error)

	LikeEvent(ctx context.Context, userID, eventID string) error
	UnlikeEvent(ctx context.Context, userID, eventID string) error
	BookmarkEvent(ctx context.Context, userID, eventID string) error
	RemoveBookmark(ctx context.Context, userID, eventID string) error

	// RecordView bumps the event's view counter backend-side; view counts
	// are server-owned and carry no local state.
	RecordView(ctx context.Context, eventID string) error
}
