package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"campusmap/internal/domain/entity"
	"campusmap/internal/domain/service"
	"campusmap/internal/usecase"
)

// engagementService caches one profile per user and applies like/bookmark
// mutations optimistically: the cached profile changes first, the backend
// call follows, and a backend failure rolls the cached change back.
// Aggregate counters (liked_count, viewed_count) stay server-owned and are
// never adjusted locally.
type engagementService struct {
	backend service.EventBackend
	logger  *slog.Logger

	mu       sync.Mutex
	profiles map[string]*entity.UserProfile
}

// NewEngagementService creates the engagement usecase.
func NewEngagementService(backend service.EventBackend, logger *slog.Logger) usecase.EngagementUsecase {
	return &engagementService{
		backend:  backend,
		logger:   logger,
		profiles: make(map[string]*entity.UserProfile),
	}
}

func (s *engagementService) Profile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	uid := normalizeUserID(userID)

	s.mu.Lock()
	cached, ok := s.profiles[uid]
	s.mu.Unlock()
	if ok {
		return cloneProfile(cached), nil
	}

	fetched, err := s.backend.FetchUserProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.profiles[uid] = fetched
	s.mu.Unlock()

	return cloneProfile(fetched), nil
}

func (s *engagementService) LikeEvent(ctx context.Context, userID, eventID string) error {
	return s.mutate(ctx, userID, eventID, likeOp{}, s.backend.LikeEvent)
}

func (s *engagementService) UnlikeEvent(ctx context.Context, userID, eventID string) error {
	return s.mutate(ctx, userID, eventID, unlikeOp{}, s.backend.UnlikeEvent)
}

func (s *engagementService) BookmarkEvent(ctx context.Context, userID, eventID string) error {
	return s.mutate(ctx, userID, eventID, bookmarkOp{}, s.backend.BookmarkEvent)
}

func (s *engagementService) RemoveBookmark(ctx context.Context, userID, eventID string) error {
	return s.mutate(ctx, userID, eventID, unbookmarkOp{}, s.backend.RemoveBookmark)
}

func (s *engagementService) RecordView(ctx context.Context, eventID string) error {
	return s.backend.RecordView(ctx, eventID)
}

// profileOp describes one reversible engagement mutation against a cached
// profile.
type profileOp interface {
	// applied reports whether the profile already reflects the mutation.
	applied(p *entity.UserProfile, eventID string) bool
	apply(p *entity.UserProfile, eventID string)
	revert(p *entity.UserProfile, eventID string)
}

func (s *engagementService) mutate(
	ctx context.Context,
	userID, eventID string,
	op profileOp,
	call func(ctx context.Context, userID, eventID string) error,
) error {
	uid := normalizeUserID(userID)

	s.mu.Lock()
	profile, cached := s.profiles[uid]
	if cached {
		if op.applied(profile, eventID) {
			s.mu.Unlock()

			return nil
		}
		op.apply(profile, eventID)
	}
	s.mu.Unlock()

	if err := call(ctx, uid, eventID); err != nil {
		if cached {
			s.mu.Lock()
			op.revert(profile, eventID)
			s.mu.Unlock()
		}

		s.logger.Warn("engagement mutation failed",
			slog.String("user_id", uid),
			slog.String("event_id", eventID),
			slog.Any("error", err),
		)

		return err
	}

	return nil
}

type likeOp struct{}

func (likeOp) applied(p *entity.UserProfile, eventID string) bool { return p.HasLiked(eventID) }
func (likeOp) apply(p *entity.UserProfile, eventID string)        { p.Likes = append(p.Likes, eventID) }
func (likeOp) revert(p *entity.UserProfile, eventID string)       { p.Likes = remove(p.Likes, eventID) }

type unlikeOp struct{}

func (unlikeOp) applied(p *entity.UserProfile, eventID string) bool { return !p.HasLiked(eventID) }
func (unlikeOp) apply(p *entity.UserProfile, eventID string)        { p.Likes = remove(p.Likes, eventID) }
func (unlikeOp) revert(p *entity.UserProfile, eventID string)       { p.Likes = append(p.Likes, eventID) }

type bookmarkOp struct{}

func (bookmarkOp) applied(p *entity.UserProfile, eventID string) bool {
	return p.HasBookmarked(eventID)
}

func (bookmarkOp) apply(p *entity.UserProfile, eventID string) {
	p.Bookmarks = append(p.Bookmarks, eventID)
}

func (bookmarkOp) revert(p *entity.UserProfile, eventID string) {
	p.Bookmarks = remove(p.Bookmarks, eventID)
}

type unbookmarkOp struct{}

func (unbookmarkOp) applied(p *entity.UserProfile, eventID string) bool {
	return !p.HasBookmarked(eventID)
}

func (unbookmarkOp) apply(p *entity.UserProfile, eventID string) {
	p.Bookmarks = remove(p.Bookmarks, eventID)
}

func (unbookmarkOp) revert(p *entity.UserProfile, eventID string) {
	p.Bookmarks = append(p.Bookmarks, eventID)
}

func remove(ids []string, eventID string) []string {
	return slices.DeleteFunc(ids, func(id string) bool { return id == eventID })
}

func cloneProfile(p *entity.UserProfile) *entity.UserProfile {
	c := *p
	c.Likes = slices.Clone(p.Likes)
	c.Bookmarks = slices.Clone(p.Bookmarks)
	c.DerivedCategories = slices.Clone(p.DerivedCategories)

	return &c
}
