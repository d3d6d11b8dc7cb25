package handler

import (
	"net/http"
	"testing"

	"campusmap/internal/domain/entity"
	"campusmap/internal/domain/eventfilter"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEventHandler(events *mockEventUsecase, engagement *mockEngagementUsecase) *EventHandler {
	return NewEventHandler(events, engagement, newDiscardLogger())
}

func TestEventHandler_ListEvents(t *testing.T) {
	events := new(mockEventUsecase)
	h := newTestEventHandler(events, new(mockEngagementUsecase))

	events.On("BrowseEvents", mock.Anything, eventfilter.Criteria{
		Category: "Arts, Performance",
		Search:   "concert",
		Time:     "today",
	}).Return([]entity.Event{{EventID: "1", Name: "Spring Concert"}}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/events?category=Arts,+Performance&q=concert&time=today", "", "")

	require.NoError(t, h.ListEvents(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Spring Concert")
	events.AssertExpectations(t)
}

func TestEventHandler_ListEvents_UnknownTimeWindow(t *testing.T) {
	h := newTestEventHandler(new(mockEventUsecase), new(mockEngagementUsecase))

	c, _ := newTestContext(t, http.MethodGet, "/api/events?time=someday", "", "")

	err := h.ListEvents(c)
	require.Error(t, err)
}

func TestEventHandler_MapEvents_ParsesViewport(t *testing.T) {
	events := new(mockEventUsecase)
	h := newTestEventHandler(events, new(mockEngagementUsecase))

	expected := &orb.Bound{Min: orb.Point{-71.5, 41.8}, Max: orb.Point{-71.3, 41.9}}
	events.On("MapEvents", mock.Anything, eventfilter.Criteria{}, expected).
		Return([]entity.Event{}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/events/map?bbox=-71.5,41.8,-71.3,41.9", "", "")

	require.NoError(t, h.MapEvents(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	events.AssertExpectations(t)
}

func TestEventHandler_MapEvents_InvalidViewport(t *testing.T) {
	h := newTestEventHandler(new(mockEventUsecase), new(mockEngagementUsecase))

	for _, bbox := range []string{"1,2,3", "a,b,c,d", "-71.3,41.8,-71.5,41.9"} {
		c, _ := newTestContext(t, http.MethodGet, "/api/events/map?bbox="+bbox, "", "")

		err := h.MapEvents(c)
		require.Error(t, err, "bbox=%s", bbox)
	}
}

func TestEventHandler_GetEvent(t *testing.T) {
	events := new(mockEventUsecase)
	h := newTestEventHandler(events, new(mockEngagementUsecase))

	events.On("GetEvent", mock.Anything, "ev-1").
		Return(&entity.Event{EventID: "ev-1", Name: "Workshop"}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/events/ev-1", "", "")
	c.SetParamNames("id")
	c.SetParamValues("ev-1")

	require.NoError(t, h.GetEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Workshop")
}

func TestEventHandler_RecordView(t *testing.T) {
	engagement := new(mockEngagementUsecase)
	h := newTestEventHandler(new(mockEventUsecase), engagement)

	engagement.On("RecordView", mock.Anything, "ev-1").Return(nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/events/ev-1/views", "", "")
	c.SetParamNames("id")
	c.SetParamValues("ev-1")

	require.NoError(t, h.RecordView(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	engagement.AssertExpectations(t)
}

func TestEventHandler_Recommendations_RequiresAuth(t *testing.T) {
	h := newTestEventHandler(new(mockEventUsecase), new(mockEngagementUsecase))

	c, rec := newTestContext(t, http.MethodGet, "/api/recommendations", "", "")

	require.NoError(t, h.Recommendations(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEventHandler_Recommendations(t *testing.T) {
	events := new(mockEventUsecase)
	h := newTestEventHandler(events, new(mockEngagementUsecase))

	events.On("Recommendations", mock.Anything, "alice").
		Return([]entity.Event{{EventID: "ev-1"}}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/recommendations", "", "alice")

	require.NoError(t, h.Recommendations(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	events.AssertExpectations(t)
}

func TestEventHandler_MapEvents_MarkerMetadata(t *testing.T) {
	events := new(mockEventUsecase)
	h := newTestEventHandler(events, new(mockEngagementUsecase))

	events.On("MapEvents", mock.Anything, eventfilter.Criteria{}, (*orb.Bound)(nil)).
		Return([]entity.Event{{
			EventID:    "ev-1",
			Name:       "Spring Concert",
			Categories: []string{"Arts, Performance", "Student Clubs, Social"},
			Latitude:   41.826,
			Longitude:  -71.403,
		}}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/events/map", "", "")

	require.NoError(t, h.MapEvents(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"category":"Arts"`)
	assert.Contains(t, rec.Body.String(), `"category_label":"Arts, Student Clubs"`)
	assert.Contains(t, rec.Body.String(), `"marker_color":"#e83e8c"`)
}

func TestEventHandler_Categories_CarriesColors(t *testing.T) {
	events := new(mockEventUsecase)
	h := newTestEventHandler(events, new(mockEngagementUsecase))

	events.On("Categories", mock.Anything).
		Return([]string{"Athletics", "Basket Weaving"}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/categories", "", "")

	require.NoError(t, h.Categories(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Athletics"`)
	assert.Contains(t, rec.Body.String(), `"color":"#28a745"`)
	// Unknown categories fall back to the default marker color.
	assert.Contains(t, rec.Body.String(), `"color":"#495057"`)
}
