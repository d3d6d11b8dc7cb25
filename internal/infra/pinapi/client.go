// Package pinapi implements the HTTP client for the remote pin store.
package pinapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"campusmap/config"
	"campusmap/internal/domain/entity"
	domainerrors "campusmap/internal/domain/errors"
	"campusmap/internal/domain/service"

	"github.com/pkg/errors"
)

const responseTypeSuccess = "success"

// envelope is the pin store's response wrapper. Error carries the server's
// failure reason when ResponseType is not "success".
type envelope struct {
	ResponseType string    `json:"response_type"`
	Error        string    `json:"error"`
	Pin          *wirePin  `json:"pin"`
	Pins         []wirePin `json:"pins"`
}

// wirePin is a pin as the store serializes it. The store calls the
// longitude field "lon" and has shipped both "uid" and "userId" for the
// owner across revisions.
type wirePin struct {
	ID        string  `json:"id"`
	UID       string  `json:"uid"`
	UserID    string  `json:"userId"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Timestamp int64   `json:"timestamp"`
}

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient creates a PinBackend talking to the configured pin store.
func NewClient(cfg *config.Config, logger *slog.Logger) service.PinBackend {
	return &client{
		baseURL: cfg.PinBackend.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.PinBackend.Timeout,
		},
		logger: logger,
		now:    time.Now,
	}
}

// AddPin creates a pin via GET /add-pin?uid=<id>&lat=<f>&lon=<f>.
func (c *client) AddPin(ctx context.Context, uid string, lat, lng float64) (*service.AddPinResult, error) {
	query := url.Values{}
	query.Set("uid", uid)
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	env, err := c.get(ctx, "/add-pin", query)
	if err != nil {
		return nil, domainerrors.NewBackendCallError("pin store", errors.Wrap(err, "add pin"))
	}

	result := &service.AddPinResult{}
	if env.Pin != nil {
		result.Timestamp = env.Pin.Timestamp
	}

	return result, nil
}

// ListPins fetches pins via GET /listpins?uid=<id|"all"> and converts them
// to entities: lon becomes Lng, missing ids and timestamps are synthesized,
// and ownership is resolved. For a per-user listing every pin belongs to
// the requested uid; for the global listing the owner comes from whichever
// of the store's two owner fields is present, defaulting to "unknown".
func (c *client) ListPins(ctx context.Context, uid string) ([]entity.Pin, error) {
	query := url.Values{}
	query.Set("uid", uid)

	env, err := c.get(ctx, "/listpins", query)
	if err != nil {
		return nil, domainerrors.NewBackendCallError("pin store", errors.Wrap(err, "list pins"))
	}

	now := c.now()
	pins := make([]entity.Pin, 0, len(env.Pins))
	for _, wp := range env.Pins {
		pin := entity.Pin{
			ID:        wp.ID,
			UserID:    uid,
			Lat:       wp.Lat,
			Lng:       wp.Lon,
			Timestamp: wp.Timestamp,
		}
		if pin.ID == "" {
			pin.ID = entity.NewRandomPinID(now)
		}
		if pin.Timestamp == 0 {
			pin.Timestamp = now.UnixMilli()
		}
		if uid == service.PinOwnerAll {
			pin.UserID = resolveOwner(wp)
		}
		pins = append(pins, pin)
	}

	c.logger.Debug("listed pins from remote store",
		slog.String("uid", uid),
		slog.Int("count", len(pins)),
	)

	return pins, nil
}

// ClearUser deletes every pin owned by uid via GET /clear-user?uid=<id>.
func (c *client) ClearUser(ctx context.Context, uid string) error {
	query := url.Values{}
	query.Set("uid", uid)

	if _, err := c.get(ctx, "/clear-user", query); err != nil {
		return domainerrors.NewBackendCallError("pin store", errors.Wrap(err, "clear user pins"))
	}

	return nil
}

func resolveOwner(wp wirePin) string {
	if wp.UID != "" {
		return wp.UID
	}
	if wp.UserID != "" {
		return wp.UserID
	}

	return "unknown"
}

// get issues a GET against the store and decodes the response envelope,
// turning transport failures, non-2xx statuses and non-success envelopes
// into errors.
func (c *client) get(ctx context.Context, path string, query url.Values) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("pin store returned status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errors.Wrap(err, "decode pin store response")
	}

	if env.ResponseType != responseTypeSuccess {
		if env.Error != "" {
			return nil, errors.Errorf("pin store error: %s", env.Error)
		}

		return nil, errors.Errorf("pin store returned response_type %q", env.ResponseType)
	}

	return &env, nil
}
