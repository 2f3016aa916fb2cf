package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"braindrop/internal/config"
	"braindrop/internal/logger"
	"braindrop/models"
)

// raindropsPerPage is the page size used when walking a collection. The
// raindrop.io API caps pages at 50 items.
const raindropsPerPage = 50

// userAgent identifies the client to the raindrop.io service.
const userAgent = "braindrop (https://github.com/braindrop-tui/braindrop)"

type httpRaindropAPI struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// Response envelopes. Every raindrop.io reply carries a "result" flag next
// to the payload member.
type raindropsResponse struct {
	Result bool              `json:"result"`
	Items  []models.Raindrop `json:"items"`
}

type raindropResponse struct {
	Result bool            `json:"result"`
	Item   models.Raindrop `json:"item"`
}

type collectionsResponse struct {
	Result bool                `json:"result"`
	Items  []models.Collection `json:"items"`
}

type userResponse struct {
	Result bool        `json:"result"`
	User   models.User `json:"user"`
}

type tagsResponse struct {
	Result bool             `json:"result"`
	Items  []models.TagData `json:"items"`
}

type suggestionsResponse struct {
	Result bool               `json:"result"`
	Item   models.Suggestions `json:"item"`
}

// NewHTTPRaindropAPI constructs an HTTP/REST implementation of
// [RaindropAPI]. It normalises and validates the base URL from cfg.BaseURL
// and configures the underlying resty client with the resolved base URL,
// request timeout, and client user agent.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPRaindropAPI(cfg config.API, logger *logger.Logger) (RaindropAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", userAgent)

	api := &httpRaindropAPI{client: client, logger: logger}
	api.SetToken(cfg.Token)
	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RaindropAPI]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpRaindropAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RaindropAPI]. It returns the API token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpRaindropAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// User implements [RaindropAPI]. It GETs /user and returns the
// authenticated user record. A 401 response surfaces as [ErrUnauthorized],
// which callers use to detect a bad or expired token.
func (h *httpRaindropAPI) User(ctx context.Context) (models.User, error) {
	var result userResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/user")
	if err != nil {
		return models.User{}, fmt.Errorf("user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if !result.Result {
		return models.User{}, fmt.Errorf("user request: %w", ErrRequestFailed)
	}

	return result.User, nil
}

// Collections implements [RaindropAPI]. It GETs /collections for the root
// set or /collections/childrens for the nested set.
func (h *httpRaindropAPI) Collections(ctx context.Context, root bool) ([]models.Collection, error) {
	path := "/collections"
	if !root {
		path = "/collections/childrens"
	}

	var result collectionsResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("collections request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if !result.Result {
		return nil, fmt.Errorf("collections request: %w", ErrRequestFailed)
	}

	return result.Items, nil
}

// Raindrops implements [RaindropAPI]. It walks GET /raindrops/{collection}
// page by page until the server returns an empty page, invoking progress
// after each page. The untagged and broken collections exist only in the
// local cache and are rejected with [ErrLocalCollection].
func (h *httpRaindropAPI) Raindrops(ctx context.Context, collection int64, progress func(count int)) ([]models.Raindrop, error) {
	if models.SpecialCollection(collection).IsLocal() {
		return nil, fmt.Errorf("raindrops request: collection %d: %w", collection, ErrLocalCollection)
	}

	var raindrops []models.Raindrop

	for page := 0; ; page++ {
		var result raindropsResponse

		resp, err := h.authedRequest(ctx).
			SetQueryParams(map[string]string{
				"page":    strconv.Itoa(page),
				"perpage": strconv.Itoa(raindropsPerPage),
			}).
			SetResult(&result).
			Get(fmt.Sprintf("/raindrops/%d", collection))
		if err != nil {
			return nil, fmt.Errorf("raindrops request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}
		if !result.Result {
			return nil, fmt.Errorf("raindrops request: %w", ErrRequestFailed)
		}

		if len(result.Items) == 0 {
			break
		}
		raindrops = append(raindrops, result.Items...)
		if progress != nil {
			progress(len(raindrops))
		}
	}

	return raindrops, nil
}

// Tags implements [RaindropAPI]. It GETs /tags, or /tags/{collection} when
// a collection is given.
func (h *httpRaindropAPI) Tags(ctx context.Context, collection *int64) ([]models.TagData, error) {
	path := "/tags"
	if collection != nil {
		path = fmt.Sprintf("/tags/%d", *collection)
	}

	var result tagsResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("tags request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if !result.Result {
		return nil, fmt.Errorf("tags request: %w", ErrRequestFailed)
	}

	return result.Items, nil
}

// AddRaindrop implements [RaindropAPI]. It POSTs the raindrop to /raindrop
// and returns the record the server created, including the assigned ID.
func (h *httpRaindropAPI) AddRaindrop(ctx context.Context, raindrop models.Raindrop) (models.Raindrop, error) {
	var result raindropResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(raindrop).
		SetResult(&result).
		Post("/raindrop")
	if err != nil {
		return models.Raindrop{}, fmt.Errorf("add raindrop request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Raindrop{}, err
	}
	if !result.Result {
		return models.Raindrop{}, fmt.Errorf("add raindrop request: %w", ErrRequestFailed)
	}

	return result.Item, nil
}

// UpdateRaindrop implements [RaindropAPI]. It PUTs the raindrop to
// /raindrop/{id} and returns the server-side record after the update.
func (h *httpRaindropAPI) UpdateRaindrop(ctx context.Context, raindrop models.Raindrop) (models.Raindrop, error) {
	var result raindropResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(raindrop).
		SetResult(&result).
		Put(fmt.Sprintf("/raindrop/%d", raindrop.ID))
	if err != nil {
		return models.Raindrop{}, fmt.Errorf("update raindrop request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Raindrop{}, err
	}
	if !result.Result {
		return models.Raindrop{}, fmt.Errorf("update raindrop request: %w", ErrRequestFailed)
	}

	return result.Item, nil
}

// RemoveRaindrop implements [RaindropAPI]. It DELETEs /raindrop/{id}. The
// server moves the raindrop to the trash, or deletes it for good if it is
// already trashed.
func (h *httpRaindropAPI) RemoveRaindrop(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/raindrop/%d", id))
	if err != nil {
		return fmt.Errorf("remove raindrop request: %w", err)
	}

	return mapHTTPError(resp)
}

// Suggestions implements [RaindropAPI]. For a brand-new raindrop it POSTs
// the link to /raindrop/suggest; for an existing one it GETs
// /raindrop/{id}/suggest.
func (h *httpRaindropAPI) Suggestions(ctx context.Context, raindrop models.Raindrop) (models.Suggestions, error) {
	var result suggestionsResponse

	var resp *resty.Response
	var err error
	if raindrop.IsBrandNew() {
		resp, err = h.authedRequest(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]string{"link": raindrop.Link}).
			SetResult(&result).
			Post("/raindrop/suggest")
	} else {
		resp, err = h.authedRequest(ctx).
			SetResult(&result).
			Get(fmt.Sprintf("/raindrop/%d/suggest", raindrop.ID))
	}
	if err != nil {
		return models.Suggestions{}, fmt.Errorf("suggestions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Suggestions{}, err
	}
	if !result.Result {
		return models.Suggestions{}, fmt.Errorf("suggestions request: %w", ErrRequestFailed)
	}

	return result.Item, nil
}

// authedRequest builds a request carrying the bearer token and a fresh
// X-Request-ID for log correlation.
func (h *httpRaindropAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
