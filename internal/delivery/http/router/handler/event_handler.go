package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"campusmap/internal/delivery/http/middleware"
	"campusmap/internal/delivery/http/response"
	"campusmap/internal/domain/entity"
	domainerrors "campusmap/internal/domain/errors"
	"campusmap/internal/domain/eventfilter"
	"campusmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for event discovery handlers.
type EventHandler struct {
	events     usecase.EventUsecase
	engagement usecase.EngagementUsecase
	logger     *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(events usecase.EventUsecase, engagement usecase.EngagementUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		events:     events,
		engagement: engagement,
		logger:     logger,
	}
}

// ListEvents returns events matching the query's filter dimensions.
func (h *EventHandler) ListEvents(c echo.Context) error {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		return err
	}

	events, err := h.events.BrowseEvents(c.Request().Context(), criteria)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// MapEvents returns map-eligible events, optionally restricted to the
// bbox query parameter (minLng,minLat,maxLng,maxLat).
func (h *EventHandler) MapEvents(c echo.Context) error {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		return err
	}

	viewport, err := parseViewport(c.QueryParam("bbox"))
	if err != nil {
		return err
	}

	events, err := h.events.MapEvents(c.Request().Context(), criteria, viewport)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, markersFor(events), "")
}

// eventMarker decorates a map-eligible event with the rendering metadata
// the map UI derives from its categories.
type eventMarker struct {
	entity.Event
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	MarkerColor   string `json:"marker_color"`
}

func markersFor(events []entity.Event) []eventMarker {
	markers := make([]eventMarker, 0, len(events))
	for _, event := range events {
		markers = append(markers, eventMarker{
			Event:         event,
			Category:      entity.ShortCategoryName(event.PrimaryCategory()),
			CategoryLabel: entity.FormatCategories(event.Categories),
			MarkerColor:   entity.CategoryColor(event.Categories),
		})
	}

	return markers
}

// GetEvent returns a single event by id.
func (h *EventHandler) GetEvent(c echo.Context) error {
	eventID := c.Param("id")
	if eventID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Event id is required")
	}

	event, err := h.events.GetEvent(c.Request().Context(), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "")
}

// RecordView bumps the event's server-side view counter.
func (h *EventHandler) RecordView(c echo.Context) error {
	eventID := c.Param("id")
	if eventID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Event id is required")
	}

	if err := h.engagement.RecordView(c.Request().Context(), eventID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"event_id": eventID}, "View recorded")
}

// Trending returns the backend's trending event ranking.
func (h *EventHandler) Trending(c echo.Context) error {
	events, err := h.events.Trending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// Recommendations returns personalized events for the authenticated user.
func (h *EventHandler) Recommendations(c echo.Context) error {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	events, err := h.events.Recommendations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

type categoryInfo struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Categories returns the backend's category vocabulary with the marker
// color assigned to each entry.
func (h *EventHandler) Categories(c echo.Context) error {
	categories, err := h.events.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	infos := make([]categoryInfo, 0, len(categories))
	for _, name := range categories {
		infos = append(infos, categoryInfo{
			Name:  name,
			Color: entity.CategoryColor([]string{name}),
		})
	}

	return response.Success(c, http.StatusOK, infos, "")
}

func criteriaFromQuery(c echo.Context) (eventfilter.Criteria, error) {
	criteria := eventfilter.Criteria{
		Category:   c.QueryParam("category"),
		Search:     c.QueryParam("q"),
		Location:   c.QueryParam("location"),
		Time:       c.QueryParam("time"),
		OnlineOnly: c.QueryParam("online") == "true",
	}

	if criteria.Time != "" {
		if _, ok := eventfilter.WindowFor(criteria.Time, time.Now()); !ok {
			return eventfilter.Criteria{}, domainerrors.ErrUnknownTimeWindow.WithDetails(criteria.Time)
		}
	}

	return criteria, nil
}

// parseViewport parses a bbox query parameter into a bound. An empty
// parameter means no viewport restriction.
func parseViewport(bbox string) (*orb.Bound, error) {
	if bbox == "" {
		return nil, nil
	}

	parts := strings.Split(bbox, ",")
	if len(parts) != 4 {
		return nil, domainerrors.ErrInvalidViewport.WithDetails(bbox)
	}

	coords := make([]float64, 4)
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, domainerrors.ErrInvalidViewport.WithDetails(bbox)
		}
		coords[i] = value
	}

	bound := orb.Bound{
		Min: orb.Point{coords[0], coords[1]},
		Max: orb.Point{coords[2], coords[3]},
	}
	if bound.Min[0] > bound.Max[0] || bound.Min[1] > bound.Max[1] {
		return nil, domainerrors.ErrInvalidViewport.WithDetails(bbox)
	}

	return &bound, nil
}
