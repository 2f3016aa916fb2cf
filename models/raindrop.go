package models

import (
	"encoding/json"
	"time"
)

// RaindropType is the media type the raindrop.io server assigns to a
// bookmark.
type RaindropType string

const (
	TypeLink     RaindropType = "link"
	TypeArticle  RaindropType = "article"
	TypeImage    RaindropType = "image"
	TypeVideo    RaindropType = "video"
	TypeDocument RaindropType = "document"
	TypeAudio    RaindropType = "audio"
)

// Media holds one media entry attached to a raindrop.
type Media struct {
	// Link is the URL of the media item.
	Link string `json:"link"`

	// Type is the media type reported by the server.
	Type RaindropType `json:"type"`
}

// Raindrop is a single bookmark record as managed by the raindrop.io
// service.
type Raindrop struct {
	// ID is the server-side identifier of the raindrop. A raindrop with a
	// non-positive ID has not been saved to the server yet.
	ID int64

	// Collection is the ID of the collection the raindrop belongs to.
	// Special collection IDs (see SpecialCollection) are valid here.
	Collection int64

	// Cover is the URL of the cover image, if any.
	Cover string

	// Created is when the raindrop was created, zero if unknown.
	Created time.Time

	// Domain is the host part of the link, as reported by the server.
	Domain string

	// Excerpt is the short descriptive text for the raindrop.
	Excerpt string

	// Note is the user's note attached to the raindrop.
	Note string

	// LastUpdate is when the raindrop was last modified, zero if unknown.
	LastUpdate time.Time

	// Link is the bookmarked URL.
	Link string

	// Media lists media items the server extracted from the link.
	Media []Media

	// Tags are the tags on the raindrop.
	Tags []Tag

	// Title is the title of the raindrop.
	Title string

	// Type is the media type of the raindrop.
	Type RaindropType

	// Broken reports whether the server thinks the link is dead.
	Broken bool

	// UserID is the ID of the owning user.
	UserID int64
}

// IsBrandNew reports whether the raindrop has yet to be saved to the
// server.
func (r Raindrop) IsBrandNew() bool {
	return r.ID <= 0
}

// IsUnsorted reports whether the raindrop lives in the unsorted
// collection.
func (r Raindrop) IsUnsorted() bool {
	return r.Collection == int64(CollectionUnsorted)
}

// IsTagged reports whether the raindrop carries the given tag,
// case-insensitively.
func (r Raindrop) IsTagged(tag Tag) bool {
	for _, t := range r.Tags {
		if t.Equal(tag) {
			return true
		}
	}
	return false
}

// idRef is the `{"$id": n}` reference object raindrop.io uses for
// collection and user members.
type idRef struct {
	ID int64 `json:"$id"`
}

// raindropWire is the raindrop.io JSON layout of a raindrop.
type raindropWire struct {
	ID         int64        `json:"_id,omitempty"`
	Collection idRef        `json:"collection"`
	Cover      string       `json:"cover,omitempty"`
	Created    *time.Time   `json:"created,omitempty"`
	Domain     string       `json:"domain,omitempty"`
	Excerpt    string       `json:"excerpt"`
	Note       string       `json:"note"`
	LastUpdate *time.Time   `json:"lastUpdate,omitempty"`
	Link       string       `json:"link"`
	Media      []Media      `json:"media,omitempty"`
	Tags       []Tag        `json:"tags"`
	Title      string       `json:"title"`
	Type       RaindropType `json:"type,omitempty"`
	Broken     bool         `json:"broken,omitempty"`
	User       *idRef       `json:"user,omitempty"`
}

// MarshalJSON renders the raindrop in the raindrop.io wire format, with
// the collection and user expressed as `$id` references.
func (r Raindrop) MarshalJSON() ([]byte, error) {
	wire := raindropWire{
		ID:         r.ID,
		Collection: idRef{ID: r.Collection},
		Cover:      r.Cover,
		Domain:     r.Domain,
		Excerpt:    r.Excerpt,
		Note:       r.Note,
		Link:       r.Link,
		Media:      r.Media,
		Tags:       r.Tags,
		Title:      r.Title,
		Type:       r.Type,
		Broken:     r.Broken,
	}
	if r.ID <= 0 {
		wire.ID = 0
	}
	if !r.Created.IsZero() {
		created := r.Created
		wire.Created = &created
	}
	if !r.LastUpdate.IsZero() {
		updated := r.LastUpdate
		wire.LastUpdate = &updated
	}
	if r.UserID != 0 {
		wire.User = &idRef{ID: r.UserID}
	}
	if wire.Tags == nil {
		wire.Tags = []Tag{}
	}
	return json.Marshal(wire)
}

// UnmarshalJSON parses the raindrop.io wire format.
func (r *Raindrop) UnmarshalJSON(data []byte) error {
	var wire raindropWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*r = Raindrop{
		ID:         wire.ID,
		Collection: wire.Collection.ID,
		Cover:      wire.Cover,
		Domain:     wire.Domain,
		Excerpt:    wire.Excerpt,
		Note:       wire.Note,
		Link:       wire.Link,
		Media:      wire.Media,
		Tags:       wire.Tags,
		Title:      wire.Title,
		Type:       wire.Type,
		Broken:     wire.Broken,
	}
	if wire.Created != nil {
		r.Created = *wire.Created
	}
	if wire.LastUpdate != nil {
		r.LastUpdate = *wire.LastUpdate
	}
	if wire.User != nil {
		r.UserID = wire.User.ID
	}
	return nil
}
