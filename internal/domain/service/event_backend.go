package service

import (
	"context"

	"campusmap/internal/domain/entity"
)

// EventQuery is the server-side filter set forwarded to the events backend.
// Client-side refinement (search text, buckets, windows) happens afterwards
// in the eventfilter package.
type EventQuery struct {
	Time     string
	Category string
	Location string
}

// EventBackend is the events/user store. Every method call crosses the
// network; responses arrive in the backend's {code, data, msg} envelope and
// are normalized to canonical entities before being returned.
type EventBackend interface {
	FetchEvents(ctx context.Context, query EventQuery) ([]entity.Event, error)
	FetchEvent(ctx context.Context, eventID string) (*entity.Event, error)
	FetchTrending(ctx context.Context) ([]entity.Event, error)
	FetchRecommendations(ctx context.Context, userID string) ([]entity.Event, error)
	FetchCategories(ctx context.Context) ([]string, error)

	FetchUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error)

	LikeEvent(ctx context.Context, userID, eventID string) error
	UnlikeEvent(ctx context.Context, userID, eventID string) error
	BookmarkEvent(ctx context.Context, userID, eventID string) error
	RemoveBookmark(ctx context.Context, userID, eventID string) error
	RecordView(ctx context.Context, eventID string) error
}
