package impl

import (
	"context"
	"io"
	"log/slog"

	"campusmap/internal/domain/entity"
	"campusmap/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockPinBackend struct {
	mock.Mock
}

func (m *mockPinBackend) AddPin(ctx context.Context, userID string, lat, lng float64) (*service.AddPinResult, error) {
	args := m.Called(ctx, userID, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.AddPinResult), args.Error(1)
}

func (m *mockPinBackend) ListPins(ctx context.Context, userID string) ([]entity.Pin, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Pin), args.Error(1)
}

func (m *mockPinBackend) ClearUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type mockEventBackend struct {
	mock.Mock
}

func (m *mockEventBackend) FetchEvents(ctx context.Context, query service.EventQuery) ([]entity.Event, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Event), args.Error(1)
}

func (m *mockEventBackend) FetchEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *mockEventBackend) FetchTrending(ctx context.Context) ([]entity.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Event), args.Error(1)
}

func (m *mockEventBackend) FetchRecommendations(ctx context.Context, userID string) ([]entity.Event, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Event), args.Error(1)
}

func (m *mockEventBackend) FetchCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

func (m *mockEventBackend) FetchUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *mockEventBackend) LikeEvent(ctx context.Context, userID, eventID string) error {
	return m.Called(ctx, userID, eventID).Error(0)
}

func (m *mockEventBackend) UnlikeEvent(ctx context.Context, userID, eventID string) error {
	return m.Called(ctx, userID, eventID).Error(0)
}

func (m *mockEventBackend) BookmarkEvent(ctx context.Context, userID, eventID string) error {
	return m.Called(ctx, userID, eventID).Error(0)
}

func (m *mockEventBackend) RemoveBookmark(ctx context.Context, userID, eventID string) error {
	return m.Called(ctx, userID, eventID).Error(0)
}

func (m *mockEventBackend) RecordView(ctx context.Context, eventID string) error {
	return m.Called(ctx, eventID).Error(0)
}
