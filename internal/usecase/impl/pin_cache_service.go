package impl

import (
	"context"
	"log/slog"
	"net/url"
	"sort"
	"sync"
	"time"

	"campusmap/internal/domain/entity"
	"campusmap/internal/domain/service"
	"campusmap/internal/usecase"
)

// pinCacheService mirrors the remote pin store in memory, keyed by pin id.
// The store is authoritative: pins are never edited locally, only created
// and deleted, so reconciliation is always last-fetch-wins per user
// (delete-then-insert) with no merge logic.
type pinCacheService struct {
	backend service.PinBackend
	logger  *slog.Logger

	mu   sync.RWMutex
	pins map[string]entity.Pin

	now func() time.Time
}

// NewPinCacheService creates a pin cache backed by the remote store.
func NewPinCacheService(backend service.PinBackend, logger *slog.Logger) usecase.PinUsecase {
	return &pinCacheService{
		backend: backend,
		logger:  logger,
		pins:    make(map[string]entity.Pin),
		now:     time.Now,
	}
}

// normalizeUserID URL-decodes a caller-supplied user id. Ids can arrive
// URL-encoded from route or query parameters; every cache key derived from
// one must use the decoded form. PathUnescape rather than QueryUnescape: a
// literal "+" is part of the id, not an encoded space.
func normalizeUserID(userID string) string {
	decoded, err := url.PathUnescape(userID)
	if err != nil {
		return userID
	}

	return decoded
}

func (s *pinCacheService) AddPin(ctx context.Context, userID string, lat, lng float64) (*entity.Pin, error) {
	uid := normalizeUserID(userID)

	result, err := s.backend.AddPin(ctx, uid, lat, lng)
	if err != nil {
		return nil, err
	}

	now := s.now()
	pin := entity.Pin{
		ID:        entity.NewPinID(now),
		UserID:    uid,
		Lat:       lat,
		Lng:       lng,
		Timestamp: result.Timestamp,
	}
	if pin.Timestamp == 0 {
		pin.Timestamp = now.UnixMilli()
	}

	s.mu.Lock()
	s.pins[pin.ID] = pin
	s.mu.Unlock()

	// Reconcile server-side fields the optimistic insert didn't have.
	s.UserPins(ctx, uid)

	return &pin, nil
}

func (s *pinCacheService) UserPins(ctx context.Context, userID string) []entity.Pin {
	uid := normalizeUserID(userID)

	fetched, err := s.backend.ListPins(ctx, uid)
	if err != nil {
		s.logger.Warn("refreshing user pins failed, serving cached snapshot",
			slog.String("user_id", uid),
			slog.Any("error", err),
		)

		return s.AllPins()
	}

	s.mu.Lock()
	s.removeUserLocked(uid)
	for _, pin := range fetched {
		s.pins[pin.ID] = pin
	}
	s.mu.Unlock()

	return s.AllPins()
}

func (s *pinCacheService) RefreshAll(ctx context.Context) []entity.Pin {
	fetched, err := s.backend.ListPins(ctx, service.PinOwnerAll)
	if err != nil {
		s.logger.Warn("refreshing all pins failed, serving cached snapshot",
			slog.Any("error", err),
		)

		return s.AllPins()
	}

	s.mu.Lock()
	clear(s.pins)
	for _, pin := range fetched {
		s.pins[pin.ID] = pin
	}
	s.mu.Unlock()

	return s.AllPins()
}

func (s *pinCacheService) ClearUserPins(ctx context.Context, userID string) error {
	uid := normalizeUserID(userID)

	if err := s.backend.ClearUser(ctx, uid); err != nil {
		// Cache stays as-is: the store still holds the pins.
		return err
	}

	s.mu.Lock()
	removed := s.removeUserLocked(uid)
	s.mu.Unlock()

	s.logger.Debug("cleared user pins",
		slog.String("user_id", uid),
		slog.Int("removed", removed),
	)

	return nil
}

func (s *pinCacheService) AllPins() []entity.Pin {
	s.mu.RLock()
	snapshot := make([]entity.Pin, 0, len(s.pins))
	for _, pin := range s.pins {
		snapshot = append(snapshot, pin)
	}
	s.mu.RUnlock()

	// Oldest first; map iteration order would otherwise leak into API
	// responses.
	sort.Slice(snapshot, func(i, j int) bool {
		if snapshot[i].Timestamp != snapshot[j].Timestamp {
			return snapshot[i].Timestamp < snapshot[j].Timestamp
		}

		return snapshot[i].ID < snapshot[j].ID
	})

	return snapshot
}

// removeUserLocked deletes every pin owned by uid. Callers hold the write
// lock.
func (s *pinCacheService) removeUserLocked(uid string) int {
	removed := 0
	for id, pin := range s.pins {
		if pin.UserID == uid {
			delete(s.pins, id)
			removed++
		}
	}

	return removed
}
