package models

import (
	"fmt"
	"strings"
)

// RaindropFilter narrows a group of raindrops down.
type RaindropFilter interface {
	// Matches reports whether the raindrop passes the filter.
	Matches(r Raindrop) bool

	// Description is the human-readable form used in the group
	// description.
	Description() string
}

// TagFilter keeps raindrops carrying a given tag.
type TagFilter struct {
	Tag Tag
}

func (f TagFilter) Matches(r Raindrop) bool {
	return r.IsTagged(f.Tag)
}

func (f TagFilter) Description() string {
	return fmt.Sprintf("tagged %s", f.Tag)
}

// TextFilter keeps raindrops containing a text, looked for
// case-insensitively across title, excerpt, note, link, domain and tags.
type TextFilter struct {
	Text string
}

func (f TextFilter) Matches(r Raindrop) bool {
	needle := strings.ToLower(f.Text)
	for _, haystack := range []string{r.Title, r.Excerpt, r.Note, r.Link, r.Domain} {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	for _, tag := range r.Tags {
		if strings.Contains(tag.Key(), needle) {
			return true
		}
	}
	return false
}

func (f TextFilter) Description() string {
	return fmt.Sprintf("containing %q", f.Text)
}

// Raindrops is a titled group of raindrops, usually the content of a
// collection, with an optional chain of filters applied on top. The zero
// value is an empty, untitled group.
type Raindrops struct {
	// Title is the name of the group, normally the collection title.
	Title string

	// Collection is the ID of the collection the group was built from.
	// Special collection IDs are valid here.
	Collection int64

	base    []Raindrop
	filters []RaindropFilter
}

// NewRaindrops creates a group over the given base membership.
func NewRaindrops(title string, collection int64, raindrops []Raindrop) Raindrops {
	return Raindrops{Title: title, Collection: collection, base: raindrops}
}

// Items is the filtered membership of the group.
func (g Raindrops) Items() []Raindrop {
	if len(g.filters) == 0 {
		return g.base
	}
	var out []Raindrop
	for _, raindrop := range g.base {
		if g.matches(raindrop) {
			out = append(out, raindrop)
		}
	}
	return out
}

func (g Raindrops) matches(r Raindrop) bool {
	for _, filter := range g.filters {
		if !filter.Matches(r) {
			return false
		}
	}
	return true
}

// Len is the size of the filtered membership.
func (g Raindrops) Len() int {
	return len(g.Items())
}

// IsFiltered reports whether any filter is applied to the group.
func (g Raindrops) IsFiltered() bool {
	return len(g.filters) > 0
}

// Filters is the filter chain applied to the group.
func (g Raindrops) Filters() []RaindropFilter {
	return g.filters
}

// Tagged narrows the group to raindrops carrying the given tag.
func (g Raindrops) Tagged(tag Tag) Raindrops {
	return g.withFilter(TagFilter{Tag: tag})
}

// Containing narrows the group to raindrops containing the given text.
func (g Raindrops) Containing(text string) Raindrops {
	return g.withFilter(TextFilter{Text: text})
}

func (g Raindrops) withFilter(filter RaindropFilter) Raindrops {
	filters := make([]RaindropFilter, len(g.filters), len(g.filters)+1)
	copy(filters, g.filters)
	g.filters = append(filters, filter)
	return g
}

// Unfiltered is the group with all filters removed.
func (g Raindrops) Unfiltered() Raindrops {
	g.filters = nil
	return g
}

// Refiltered rebuilds the group over a fresh base membership, keeping the
// title, source collection and the filter chain. Used after local data
// changes so an active filtered view stays live.
func (g Raindrops) Refiltered(base []Raindrop) Raindrops {
	g.base = base
	return g
}

// Description is the human-readable summary of the group, e.g.
// `All; tagged go; containing "tui" (12)`.
func (g Raindrops) Description() string {
	parts := []string{g.Title}
	for _, filter := range g.filters {
		parts = append(parts, filter.Description())
	}
	return fmt.Sprintf("%s (%d)", strings.Join(parts, "; "), g.Len())
}

// Tags is the tag population of the filtered membership, one entry per
// distinct tag with its use count. Tags are counted case-insensitively,
// the first spelling seen winning. Order is unspecified; see
// SortTagsByName and SortTagsByCount.
func (g Raindrops) Tags() []TagData {
	counts := make(map[string]int)
	spelling := make(map[string]Tag)
	var order []string
	for _, raindrop := range g.Items() {
		for _, tag := range DedupeTags(raindrop.Tags) {
			key := tag.Key()
			if _, ok := spelling[key]; !ok {
				spelling[key] = tag
				order = append(order, key)
			}
			counts[key]++
		}
	}

	out := make([]TagData, 0, len(order))
	for _, key := range order {
		out = append(out, TagData{Tag: spelling[key], Count: counts[key]})
	}
	return out
}
