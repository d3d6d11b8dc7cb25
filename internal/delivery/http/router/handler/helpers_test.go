package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"campusmap/internal/delivery/http/middleware"
	"campusmap/internal/delivery/http/validator"
	"campusmap/internal/domain/entity"
	"campusmap/internal/domain/eventfilter"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context for a single request. An empty
// userID leaves the request unauthenticated.
func newTestContext(t *testing.T, method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set(middleware.KeyUserID, userID)
	}

	return c, rec
}

type mockPinUsecase struct {
	mock.Mock
}

func (m *mockPinUsecase) AddPin(ctx context.Context, userID string, lat, lng float64) (*entity.Pin, error) {
	args := m.Called(ctx, userID, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Pin), args.Error(1)
}

func (m *mockPinUsecase) UserPins(ctx context.Context, userID string) []entity.Pin {
	return m.Called(ctx, userID).Get(0).([]entity.Pin)
}

func (m *mockPinUsecase) RefreshAll(ctx context.Context) []entity.Pin {
	return m.Called(ctx).Get(0).([]entity.Pin)
}

func (m *mockPinUsecase) ClearUserPins(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockPinUsecase) AllPins() []entity.Pin {
	return m.Called().Get(0).([]entity.Pin)
}

type mockEventUsecase struct {
	mock.Mock
}

func (m *mockEventUsecase) BrowseEvents(ctx context.Context, criteria eventfilter.Criteria) ([]entity.Event, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Event), args.Error(1)
}

func (m *mockEventUsecase) MapEvents(ctx context.Context, criteria eventfilter.Criteria, viewport *orb.Bound) ([]entity.Event, error) {
	args := m.Called(ctx, criteria, viewport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Event), args.Error(1)
}

func (m *mockEventUsecase) GetEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *mockEventUsecase) Trending(ctx context.Context) ([]entity.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Event), args.Error(1)
}

func (m *mockEventUsecase) Recommendations(ctx context.Context, userID string) ([]entity.Event, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Event), args.Error(1)
}

func (m *mockEventUsecase) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

type mockEngagementUsecase struct {
	mock.Mock
}

func (m *mockEngagementUsecase) Profile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *mockEngagementUsecase) LikeEvent(ctx context.Context, userID, eventID string) error {
	return m.Called(ctx, userID, eventID).Error(0)
}

func (m *mockEngagementUsecase) UnlikeEvent(ctx context.Context, userID, eventID string) error {
	return m.Called(ctx, userID, eventID).Error(0)
}

func (m *mockEngagementUsecase) BookmarkEvent(ctx context.Context, userID, eventID string) error {
	return m.Called(ctx, userID, eventID).Error(0)
}

func (m *mockEngagementUsecase) RemoveBookmark(ctx context.Context, userID, eventID string) error {
	return m.Called(ctx, userID, eventID).Error(0)
}

func (m *mockEngagementUsecase) RecordView(ctx context.Context, eventID string) error {
	return m.Called(ctx, eventID).Error(0)
}
