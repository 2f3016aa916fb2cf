package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"braindrop/internal/logger"
)

// DefaultWaybackBaseURL is the Internet Archive availability endpoint.
const DefaultWaybackBaseURL = "https://archive.org/wayback"

// httpWaybackClient is the HTTP implementation of [WaybackClient].
type httpWaybackClient struct {
	client *resty.Client
	logger *logger.Logger
}

type waybackResponse struct {
	ArchivedSnapshots struct {
		Closest struct {
			Available bool   `json:"available"`
			URL       string `json:"url"`
		} `json:"closest"`
	} `json:"archived_snapshots"`
}

// NewWaybackClient constructs a [WaybackClient] against baseURL (normally
// [DefaultWaybackBaseURL]).
func NewWaybackClient(baseURL string, timeout time.Duration, logger *logger.Logger) (WaybackClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid wayback base URL: %w", err)
	}

	client := resty.New().
		SetBaseURL(normalized).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)

	return &httpWaybackClient{client: client, logger: logger}, nil
}

// HasSnapshot implements [WaybackClient]. It GETs /available?url= and
// reports whether the closest snapshot is available.
func (h *httpWaybackClient) HasSnapshot(ctx context.Context, link string) (bool, error) {
	var result waybackResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("url", link).
		SetResult(&result).
		Get("/available")
	if err != nil {
		return false, fmt.Errorf("wayback availability request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.ArchivedSnapshots.Closest.Available, nil
}
