package tui

import (
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"braindrop/models"
)

// fitText truncates v to max display characters, ellipsising when needed.
func fitText(v string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(v)
	if len(runes) <= max {
		return v
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

// humanTime renders t the way the list shows ages ("3 days ago"). A zero
// time renders as a dash.
func humanTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

// exactTime renders t for the details pane, local time. A zero time
// renders as a dash.
func exactTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// looksLikeURL reports whether s could plausibly be pasted as a bookmark
// link: an absolute http(s) URL with a host.
func looksLikeURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// firstLine cuts s down to its first line, trimmed.
func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// tagLine renders tags the way the list and details show them.
func tagLine(tags []models.Tag) string {
	return models.TagsToString(tags)
}

// orderedTags applies the configured navigation ordering.
func orderedTags(tags []models.TagData, byCount bool) []models.TagData {
	if byCount {
		return models.SortTagsByCount(tags)
	}
	return models.SortTagsByName(tags)
}
