package usecase

import (
	"context"

	"campusmap/internal/domain/entity"
	"campusmap/internal/domain/eventfilter"

	"github.com/paulmach/orb"
)

// EventUsecase serves event discovery: backend fetches refined by the
// client-side filter engine.
type EventUsecase interface {
	// BrowseEvents fetches events matching the criteria's backend
	// dimensions and applies the full filter engine on top. Result
	// ordering follows the backend's ordering.
	BrowseEvents(ctx context.Context, criteria eventfilter.Criteria) ([]entity.Event, error)

	// MapEvents is BrowseEvents narrowed to map-eligible events,
	// optionally restricted to a viewport.
	MapEvents(ctx context.Context, criteria eventfilter.Criteria, viewport *orb.Bound) ([]entity.Event, error)

	GetEvent(ctx context.Context, eventID string) (*entity.Event, error)
	Trending(ctx context.Context) ([]entity.Event, error)
	Recommendations(ctx context.Context, userID string) ([]entity.Event, error)
	Categories(ctx context.Context) ([]string, error)
}
