package models

import "encoding/json"

// Suggestions holds what the raindrop.io server suggests for a link that
// is being bookmarked.
type Suggestions struct {
	// Tags are the suggested tags.
	Tags []Tag `json:"tags"`

	// Collections are the IDs of suggested collections.
	Collections []int64 `json:"-"`
}

type suggestionsWire struct {
	Tags        []Tag   `json:"tags"`
	Collections []idRef `json:"collections"`
}

// UnmarshalJSON parses the raindrop.io wire format, where suggested
// collections travel as `$id` references.
func (s *Suggestions) UnmarshalJSON(data []byte) error {
	var wire suggestionsWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	s.Tags = wire.Tags
	s.Collections = make([]int64, 0, len(wire.Collections))
	for _, ref := range wire.Collections {
		s.Collections = append(s.Collections, ref.ID)
	}
	return nil
}
