package tui

import (
	"errors"
	"strings"

	"braindrop/internal/adapter"
)

// friendlyError turns transport errors into the short notification text
// shown in the status area.
func friendlyError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "raindrop.io rejected the API token"
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "raindrop.io is rate limiting us, try again in a moment"
	case errors.Is(err, adapter.ErrNotFound):
		return "raindrop.io doesn't know that raindrop any more"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "no network, or raindrop.io is unreachable"
	}

	return err.Error()
}
