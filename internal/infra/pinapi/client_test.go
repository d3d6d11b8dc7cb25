package pinapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "campusmap/internal/domain/errors"
	"campusmap/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 4, 26, 12, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &client{
		baseURL:    srv.URL,
		httpClient: srv.Client(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        func() time.Time { return fixedNow },
	}
}

func TestClient_AddPin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/add-pin", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("uid"))
		assert.Equal(t, "41.83", r.URL.Query().Get("lat"))
		assert.Equal(t, "-71.4", r.URL.Query().Get("lon"))

		fmt.Fprint(w, `{"response_type":"success","pin":{"timestamp":1745668800000}}`)
	})

	result, err := c.AddPin(context.Background(), "alice", 41.83, -71.4)
	require.NoError(t, err)
	assert.Equal(t, int64(1745668800000), result.Timestamp)
}

func TestClient_AddPin_EnvelopeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response_type":"error","error":"user not found"}`)
	})

	_, err := c.AddPin(context.Background(), "alice", 41.83, -71.4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
}

func TestClient_AddPin_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.AddPin(context.Background(), "alice", 41.83, -71.4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_ListPins_RenamesLonAndStampsOwner(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/listpins", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("uid"))

		fmt.Fprint(w, `{"response_type":"success","pins":[
			{"id":"pin_1","lat":41.83,"lon":-71.4,"timestamp":100},
			{"lat":41.82,"lon":-71.39}
		]}`)
	})

	pins, err := c.ListPins(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, pins, 2)

	assert.Equal(t, "pin_1", pins[0].ID)
	assert.Equal(t, "alice", pins[0].UserID)
	assert.Equal(t, -71.4, pins[0].Lng)
	assert.Equal(t, int64(100), pins[0].Timestamp)

	// Missing id and timestamp are synthesized client-side.
	assert.NotEmpty(t, pins[1].ID)
	assert.Equal(t, fixedNow.UnixMilli(), pins[1].Timestamp)
	assert.Equal(t, "alice", pins[1].UserID)
}

func TestClient_ListPins_AllResolvesOwnerFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, service.PinOwnerAll, r.URL.Query().Get("uid"))

		fmt.Fprint(w, `{"response_type":"success","pins":[
			{"id":"a","uid":"alice","lat":1,"lon":2,"timestamp":1},
			{"id":"b","userId":"bob","lat":3,"lon":4,"timestamp":2},
			{"id":"c","lat":5,"lon":6,"timestamp":3}
		]}`)
	})

	pins, err := c.ListPins(context.Background(), service.PinOwnerAll)
	require.NoError(t, err)
	require.Len(t, pins, 3)

	assert.Equal(t, "alice", pins[0].UserID)
	assert.Equal(t, "bob", pins[1].UserID)
	assert.Equal(t, "unknown", pins[2].UserID)
}

func TestClient_ClearUser(t *testing.T) {
	cleared := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clear-user", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("uid"))
		cleared = true

		fmt.Fprint(w, `{"response_type":"success"}`)
	})

	require.NoError(t, c.ClearUser(context.Background(), "alice"))
	assert.True(t, cleared)
}

func TestClient_ClearUser_Failure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response_type":"failure","error":"storage unavailable"}`)
	})

	err := c.ClearUser(context.Background(), "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage unavailable")
}

func TestClient_AddPin_FailureMapsToBadGateway(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.AddPin(context.Background(), "alice", 41.83, -71.4)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	assert.Equal(t, "BACKEND_UNAVAILABLE", appErr.ErrorCode())
}
