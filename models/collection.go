package models

import (
	"encoding/json"
	"time"
)

// SpecialCollection is one of the well-known sentinel collection IDs.
// The first three are understood by the raindrop.io server; the last two
// exist only inside this client and are resolved against local data.
type SpecialCollection int64

const (
	// CollectionAll holds every non-trashed raindrop.
	CollectionAll SpecialCollection = 0

	// CollectionUnsorted holds raindrops not filed into a collection.
	CollectionUnsorted SpecialCollection = -1

	// CollectionTrash holds trashed raindrops.
	CollectionTrash SpecialCollection = -99

	// CollectionUntagged is the local-only view of raindrops without tags.
	CollectionUntagged SpecialCollection = -998

	// CollectionBroken is the local-only view of raindrops whose link the
	// server has flagged as dead.
	CollectionBroken SpecialCollection = -999
)

// IsLocal reports whether the collection only exists inside the client.
// Local collections must never be used in API calls.
func (c SpecialCollection) IsLocal() bool {
	return c == CollectionUntagged || c == CollectionBroken
}

// Title is the display name of the special collection.
func (c SpecialCollection) Title() string {
	switch c {
	case CollectionAll:
		return "All"
	case CollectionUnsorted:
		return "Unsorted"
	case CollectionTrash:
		return "Trash"
	case CollectionUntagged:
		return "Untagged"
	case CollectionBroken:
		return "Broken"
	}
	return "Unknown"
}

// AsCollection materialises the special collection as a Collection value.
func (c SpecialCollection) AsCollection() Collection {
	return Collection{ID: int64(c), Title: c.Title()}
}

// Collection is a named grouping of raindrops on the raindrop.io service.
type Collection struct {
	// ID is the identifier of the collection.
	ID int64

	// Color is the colour assigned to the collection.
	Color string

	// Count is the number of raindrops in the collection.
	Count int

	// Cover holds the cover image URLs for the collection.
	Cover []string

	// Created is when the collection was created, zero if unknown.
	Created time.Time

	// Expanded reports whether the collection is expanded in the web UI.
	Expanded bool

	// LastUpdate is when the collection was last modified, zero if unknown.
	LastUpdate time.Time

	// Public reports whether the collection is publicly visible.
	Public bool

	// Sort is the sort weight of the collection.
	Sort int

	// Title is the name of the collection.
	Title string

	// View is the view mode the web UI uses for the collection.
	View string

	// Parent is the ID of the parent collection, zero for root
	// collections.
	Parent int64
}

// collectionWire is the raindrop.io JSON layout of a collection.
type collectionWire struct {
	ID         int64      `json:"_id"`
	Color      string     `json:"color,omitempty"`
	Count      int        `json:"count"`
	Cover      []string   `json:"cover"`
	Created    *time.Time `json:"created,omitempty"`
	Expanded   bool       `json:"expanded"`
	LastUpdate *time.Time `json:"lastUpdate,omitempty"`
	Public     bool       `json:"public"`
	Sort       int        `json:"sort"`
	Title      string     `json:"title"`
	View       string     `json:"view"`
	Parent     *idRef     `json:"parent,omitempty"`
}

// MarshalJSON renders the collection in the raindrop.io wire format.
func (c Collection) MarshalJSON() ([]byte, error) {
	wire := collectionWire{
		ID:       c.ID,
		Color:    c.Color,
		Count:    c.Count,
		Cover:    c.Cover,
		Expanded: c.Expanded,
		Public:   c.Public,
		Sort:     c.Sort,
		Title:    c.Title,
		View:     c.View,
	}
	if !c.Created.IsZero() {
		created := c.Created
		wire.Created = &created
	}
	if !c.LastUpdate.IsZero() {
		updated := c.LastUpdate
		wire.LastUpdate = &updated
	}
	if c.Parent != 0 {
		wire.Parent = &idRef{ID: c.Parent}
	}
	return json.Marshal(wire)
}

// UnmarshalJSON parses the raindrop.io wire format.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var wire collectionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*c = Collection{
		ID:       wire.ID,
		Color:    wire.Color,
		Count:    wire.Count,
		Cover:    wire.Cover,
		Expanded: wire.Expanded,
		Public:   wire.Public,
		Sort:     wire.Sort,
		Title:    wire.Title,
		View:     wire.View,
	}
	if wire.Created != nil {
		c.Created = *wire.Created
	}
	if wire.LastUpdate != nil {
		c.LastUpdate = *wire.LastUpdate
	}
	if wire.Parent != nil {
		c.Parent = wire.Parent.ID
	}
	return nil
}
