package models

import (
	"encoding/json"
	"sort"
	"strings"
)

// Tag is a raindrop tag. Tags compare case-insensitively: "Go" and "go"
// are the same tag, with the first spelling encountered winning when
// lists are de-duplicated.
type Tag string

// Equal reports whether two tags are the same, ignoring case.
func (t Tag) Equal(other Tag) bool {
	return strings.EqualFold(string(t), string(other))
}

// Less reports whether t sorts before other, ignoring case.
func (t Tag) Less(other Tag) bool {
	return strings.ToLower(string(t)) < strings.ToLower(string(other))
}

// Key is the folded form of the tag, usable as a map key.
func (t Tag) Key() string {
	return strings.ToLower(string(t))
}

func (t Tag) String() string {
	return string(t)
}

// TagData pairs a tag with the number of raindrops carrying it.
type TagData struct {
	// Tag is the tag itself.
	Tag Tag

	// Count is how many raindrops use the tag.
	Count int
}

// tagDataWire is the raindrop.io JSON layout of a tag entry.
type tagDataWire struct {
	ID    string `json:"_id"`
	Count int    `json:"count"`
}

// UnmarshalJSON parses the raindrop.io wire format, where the tag name
// travels in the `_id` member.
func (t *TagData) UnmarshalJSON(data []byte) error {
	var wire tagDataWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*t = TagData{Tag: Tag(wire.ID), Count: wire.Count}
	return nil
}

// TagSeparator is what separates tags in the single-string form used by
// the tags input field.
const TagSeparator = ","

// TagSeparatorTitle names the separator for UI placeholder text.
const TagSeparatorTitle = "comma"

// DedupeTags removes case-insensitive duplicates from tags, keeping the
// first spelling of each tag and the original order.
func DedupeTags(tags []Tag) []Tag {
	seen := make(map[string]struct{}, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag.Key()]; ok {
			continue
		}
		seen[tag.Key()] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// TagsToString renders a list of tags as a comma-separated string,
// squishing case-insensitive duplicates.
func TagsToString(tags []Tag) string {
	deduped := DedupeTags(tags)
	parts := make([]string, len(deduped))
	for i, tag := range deduped {
		parts[i] = string(tag)
	}
	return strings.Join(parts, TagSeparator+" ")
}

// StringToTags parses a comma-separated string into a list of tags,
// trimming whitespace, dropping empty entries and squishing
// case-insensitive duplicates.
func StringToTags(s string) []Tag {
	var tags []Tag
	for _, part := range strings.Split(s, TagSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, Tag(part))
		}
	}
	return DedupeTags(tags)
}

// SortTagsByName returns tags sorted by tag name, ignoring case.
func SortTagsByName(tags []TagData) []TagData {
	out := make([]TagData, len(tags))
	copy(out, tags)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Tag.Less(out[j].Tag)
	})
	return out
}

// SortTagsByCount returns tags sorted by descending use count, ties
// broken by name.
func SortTagsByCount(tags []TagData) []TagData {
	out := make([]TagData, len(tags))
	copy(out, tags)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag.Less(out[j].Tag)
	})
	return out
}
