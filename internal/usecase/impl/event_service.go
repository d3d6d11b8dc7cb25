package impl

import (
	"context"
	"log/slog"
	"time"

	"campusmap/internal/domain/entity"
	"campusmap/internal/domain/eventfilter"
	"campusmap/internal/domain/service"
	"campusmap/internal/usecase"

	"github.com/paulmach/orb"
)

type eventService struct {
	backend service.EventBackend
	logger  *slog.Logger

	now func() time.Time
}

// NewEventService creates the event discovery usecase.
func NewEventService(backend service.EventBackend, logger *slog.Logger) usecase.EventUsecase {
	return &eventService{
		backend: backend,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *eventService) BrowseEvents(ctx context.Context, criteria eventfilter.Criteria) ([]entity.Event, error) {
	fetched, err := s.backend.FetchEvents(ctx, service.EventQuery{
		Time:     criteria.Time,
		Category: criteria.Category,
		Location: criteria.Location,
	})
	if err != nil {
		return nil, err
	}

	// The backend already narrows by its query dimensions, but its
	// interpretation drifts from ours (substring categories, no search).
	// Re-filtering locally keeps the result authoritative.
	filtered := eventfilter.Apply(fetched, criteria, s.now())

	s.logger.Debug("browsed events",
		slog.Int("fetched", len(fetched)),
		slog.Int("after_filter", len(filtered)),
	)

	return filtered, nil
}

func (s *eventService) MapEvents(ctx context.Context, criteria eventfilter.Criteria, viewport *orb.Bound) ([]entity.Event, error) {
	filtered, err := s.BrowseEvents(ctx, criteria)
	if err != nil {
		return nil, err
	}

	return eventfilter.MapEligible(filtered, viewport), nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	return s.backend.FetchEvent(ctx, eventID)
}

func (s *eventService) Trending(ctx context.Context) ([]entity.Event, error) {
	return s.backend.FetchTrending(ctx)
}

func (s *eventService) Recommendations(ctx context.Context, userID string) ([]entity.Event, error) {
	return s.backend.FetchRecommendations(ctx, normalizeUserID(userID))
}

func (s *eventService) Categories(ctx context.Context) ([]string, error) {
	return s.backend.FetchCategories(ctx)
}
