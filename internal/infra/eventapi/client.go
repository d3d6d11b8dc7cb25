// Package eventapi implements the HTTP client for the events/user backend.
package eventapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"campusmap/config"
	"campusmap/internal/domain/entity"
	domainerrors "campusmap/internal/domain/errors"
	"campusmap/internal/domain/service"

	"github.com/pkg/errors"
)

// codeSuccess is the success value of the backend envelope's code field.
const codeSuccess = 1

// errStatusNotFound marks an HTTP 404 from the backend so lookups can map
// it to the matching domain sentinel instead of an upstream failure.
var errStatusNotFound = errors.New("event backend returned status 404")

// envelope is the events backend's response wrapper.
type envelope struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
	Msg  string          `json:"msg"`
}

type rawProfile struct {
	UserID            string   `json:"user_id"`
	Likes             []string `json:"likes"`
	Bookmarks         []string `json:"bookmarks"`
	DerivedCategories []string `json:"derived_categories"`
}

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an EventBackend talking to the configured events/user
// store.
func NewClient(cfg *config.Config, logger *slog.Logger) service.EventBackend {
	return &client{
		baseURL: cfg.EventBackend.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.EventBackend.Timeout,
		},
		logger: logger,
	}
}

func (c *client) FetchEvents(ctx context.Context, query service.EventQuery) ([]entity.Event, error) {
	params := url.Values{}
	if query.Time != "" {
		params.Set("time", query.Time)
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Location != "" {
		params.Set("location", query.Location)
	}

	var raws []rawEvent
	if err := c.call(ctx, http.MethodGet, "/events", params, nil, &raws); err != nil {
		return nil, domainerrors.NewBackendCallError("events", errors.Wrap(err, "fetch events"))
	}

	return normalizeEvents(raws), nil
}

func (c *client) FetchEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	var raw rawEvent
	if err := c.call(ctx, http.MethodGet, "/events/"+url.PathEscape(eventID), nil, nil, &raw); err != nil {
		if errors.Is(err, errStatusNotFound) {
			return nil, domainerrors.ErrEventNotFound.WithDetails(eventID)
		}

		return nil, domainerrors.NewBackendCallError("events", errors.Wrap(err, "fetch event"))
	}

	event := normalizeEvent(raw)

	return &event, nil
}

func (c *client) FetchTrending(ctx context.Context) ([]entity.Event, error) {
	var raws []rawEvent
	if err := c.call(ctx, http.MethodGet, "/trending", nil, nil, &raws); err != nil {
		return nil, domainerrors.NewBackendCallError("events", errors.Wrap(err, "fetch trending events"))
	}

	return normalizeEvents(raws), nil
}

func (c *client) FetchRecommendations(ctx context.Context, userID string) ([]entity.Event, error) {
	params := url.Values{}
	params.Set("user_id", userID)

	var raws []rawEvent
	if err := c.call(ctx, http.MethodGet, "/recommendations", params, nil, &raws); err != nil {
		return nil, domainerrors.NewBackendCallError("events", errors.Wrap(err, "fetch recommendations"))
	}

	return normalizeEvents(raws), nil
}

func (c *client) FetchCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.call(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, domainerrors.NewBackendCallError("events", errors.Wrap(err, "fetch categories"))
	}

	return categories, nil
}

func (c *client) FetchUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var raw rawProfile
	if err := c.call(ctx, http.MethodGet, "/user/"+url.PathEscape(userID)+"/profile", nil, nil, &raw); err != nil {
		if errors.Is(err, errStatusNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WithDetails(userID)
		}

		return nil, domainerrors.NewBackendCallError("events", errors.Wrap(err, "fetch user profile"))
	}

	return &entity.UserProfile{
		UserID:            raw.UserID,
		Likes:             raw.Likes,
		Bookmarks:         raw.Bookmarks,
		DerivedCategories: raw.DerivedCategories,
	}, nil
}

func (c *client) LikeEvent(ctx context.Context, userID, eventID string) error {
	body := map[string]string{"event_id": eventID}
	if err := c.call(ctx, http.MethodPost, "/user/"+url.PathEscape(userID)+"/likes", nil, body, nil); err != nil {
		return domainerrors.NewBackendCallError("events", errors.Wrap(err, "like event"))
	}

	return nil
}

func (c *client) UnlikeEvent(ctx context.Context, userID, eventID string) error {
	path := "/user/" + url.PathEscape(userID) + "/likes/" + url.PathEscape(eventID)
	if err := c.call(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return domainerrors.NewBackendCallError("events", errors.Wrap(err, "unlike event"))
	}

	return nil
}

func (c *client) BookmarkEvent(ctx context.Context, userID, eventID string) error {
	body := map[string]string{"event_id": eventID}
	if err := c.call(ctx, http.MethodPost, "/user/"+url.PathEscape(userID)+"/bookmarks", nil, body, nil); err != nil {
		return domainerrors.NewBackendCallError("events", errors.Wrap(err, "bookmark event"))
	}

	return nil
}

func (c *client) RemoveBookmark(ctx context.Context, userID, eventID string) error {
	path := "/user/" + url.PathEscape(userID) + "/bookmarks/" + url.PathEscape(eventID)
	if err := c.call(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return domainerrors.NewBackendCallError("events", errors.Wrap(err, "remove bookmark"))
	}

	return nil
}

func (c *client) RecordView(ctx context.Context, eventID string) error {
	path := "/events/" + url.PathEscape(eventID) + "/views"
	if err := c.call(ctx, http.MethodPost, path, nil, nil, nil); err != nil {
		return domainerrors.NewBackendCallError("events", errors.Wrap(err, "record view"))
	}

	return nil
}

// call issues a request, unwraps the {code, data, msg} envelope and decodes
// data into out when non-nil.
func (c *client) call(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	c.logger.Debug("event backend call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode == http.StatusNotFound {
		return errStatusNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("event backend returned status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Wrap(err, "decode event backend response")
	}

	if env.Code != codeSuccess {
		if env.Msg != "" {
			return errors.Errorf("event backend error: %s", env.Msg)
		}

		return errors.Errorf("event backend returned code %d", env.Code)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "decode event backend data")
		}
	}

	return nil
}
