package handler

import (
	"context"
	"log/slog"
	"net/http"

	"campusmap/internal/delivery/http/middleware"
	"campusmap/internal/delivery/http/response"
	"campusmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for engagement handlers. All routes
// require authentication; the user id always comes from the token.
type UserHandler struct {
	engagement usecase.EngagementUsecase
	logger     *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(engagement usecase.EngagementUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		engagement: engagement,
		logger:     logger,
	}
}

type engagementRequest struct {
	EventID string `json:"event_id" validate:"required"`
}

// GetProfile returns the authenticated user's engagement profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	profile, err := h.engagement.Profile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// LikeEvent records a like for the authenticated user.
func (h *UserHandler) LikeEvent(c echo.Context) error {
	return h.mutate(c, h.engagement.LikeEvent, "Event liked")
}

// UnlikeEvent removes a like for the authenticated user.
func (h *UserHandler) UnlikeEvent(c echo.Context) error {
	return h.mutateByParam(c, h.engagement.UnlikeEvent, "Like removed")
}

// BookmarkEvent records a bookmark for the authenticated user.
func (h *UserHandler) BookmarkEvent(c echo.Context) error {
	return h.mutate(c, h.engagement.BookmarkEvent, "Event bookmarked")
}

// RemoveBookmark removes a bookmark for the authenticated user.
func (h *UserHandler) RemoveBookmark(c echo.Context) error {
	return h.mutateByParam(c, h.engagement.RemoveBookmark, "Bookmark removed")
}

// mutate handles POST engagement routes carrying {"event_id": ...}.
func (h *UserHandler) mutate(c echo.Context, call func(ctx context.Context, userID, eventID string) error, message string) error {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input engagementRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid engagement input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Event id is required")
	}

	if err := call(c.Request().Context(), userID, input.EventID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"event_id": input.EventID}, message)
}

// mutateByParam handles DELETE engagement routes with :eventID.
func (h *UserHandler) mutateByParam(c echo.Context, call func(ctx context.Context, userID, eventID string) error, message string) error {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	eventID := c.Param("eventID")
	if eventID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Event id is required")
	}

	if err := call(c.Request().Context(), userID, eventID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"event_id": eventID}, message)
}
