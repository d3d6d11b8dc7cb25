// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"campusmap/internal/delivery/http/middleware"
	"campusmap/internal/delivery/http/response"
	domainerrors "campusmap/internal/domain/errors"
	"campusmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PinHandler holds dependencies for pin-related handlers.
type PinHandler struct {
	uc     usecase.PinUsecase
	logger *slog.Logger
}

// NewPinHandler is the constructor for PinHandler, injected by Fx.
func NewPinHandler(uc usecase.PinUsecase, logger *slog.Logger) *PinHandler {
	return &PinHandler{
		uc:     uc,
		logger: logger,
	}
}

type createPinRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// CreatePin drops a pin at the given coordinates for the authenticated
// user.
func (h *PinHandler) CreatePin(c echo.Context) error {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input createPinRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pin input")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
	}

	pin, err := h.uc.AddPin(c.Request().Context(), userID, *input.Lat, *input.Lng)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pin, "Pin created successfully")
}

// ListPins returns the cached pin set without touching the remote store.
func (h *PinHandler) ListPins(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.AllPins(), "")
}

// RefreshPins replaces the cache with the store's full pin set.
func (h *PinHandler) RefreshPins(c echo.Context) error {
	pins := h.uc.RefreshAll(c.Request().Context())

	return response.Success(c, http.StatusOK, pins, "Pins refreshed")
}

// UserPins refreshes one user's pins and returns the full cache.
func (h *PinHandler) UserPins(c echo.Context) error {
	uid := c.Param("uid")
	if uid == "" {
		return response.BadRequest(c, "INVALID_INPUT", "User id is required")
	}

	pins := h.uc.UserPins(c.Request().Context(), uid)

	return response.Success(c, http.StatusOK, pins, "")
}

// ClearUserPins deletes the authenticated user's pins. Users may only
// clear their own pins.
func (h *PinHandler) ClearUserPins(c echo.Context) error {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	uid := c.Param("uid")
	if uid != userID {
		return domainerrors.ErrForbidden.WithDetails("pins can only be cleared by their owner")
	}

	if err := h.uc.ClearUserPins(c.Request().Context(), uid); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"user_id": uid}, "Pins cleared")
}
