package models

import (
	"encoding/json"
	"time"
)

// Group is a named grouping of collections in the user's sidebar.
type Group struct {
	// Title is the name of the group.
	Title string `json:"title"`

	// Hidden reports whether the group is collapsed away.
	Hidden bool `json:"hidden"`

	// Sort is the sort position of the group.
	Sort int `json:"sort"`

	// Collections lists the IDs of the root collections in the group.
	Collections []int64 `json:"collections"`
}

// User holds the details of a raindrop.io user.
type User struct {
	// ID is the user's identifier.
	ID int64

	// Email is the user's email address.
	Email string

	// FullName is the user's display name.
	FullName string

	// Pro reports whether the user has a pro subscription.
	Pro bool

	// Groups are the user's collection groups, in sidebar order.
	Groups []Group

	// LastUpdate is the time of the last change to the user's data on the
	// server. Zero when the server did not report one.
	LastUpdate time.Time

	// LastAction is the time of the user's last action on the server.
	LastAction time.Time
}

type userWire struct {
	ID         int64      `json:"_id"`
	Email      string     `json:"email"`
	FullName   string     `json:"fullName"`
	Pro        bool       `json:"pro"`
	Groups     []Group    `json:"groups"`
	LastUpdate *time.Time `json:"lastUpdate,omitempty"`
	LastAction *time.Time `json:"lastAction,omitempty"`
}

// MarshalJSON renders the user in the raindrop.io wire format. The client
// never sends user data to the server; this exists for the local cache.
func (u User) MarshalJSON() ([]byte, error) {
	wire := userWire{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Pro:      u.Pro,
		Groups:   u.Groups,
	}
	if !u.LastUpdate.IsZero() {
		t := u.LastUpdate
		wire.LastUpdate = &t
	}
	if !u.LastAction.IsZero() {
		t := u.LastAction
		wire.LastAction = &t
	}
	return json.Marshal(wire)
}

// UnmarshalJSON parses the raindrop.io wire format.
func (u *User) UnmarshalJSON(data []byte) error {
	var wire userWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*u = User{
		ID:       wire.ID,
		Email:    wire.Email,
		FullName: wire.FullName,
		Pro:      wire.Pro,
		Groups:   wire.Groups,
	}
	if wire.LastUpdate != nil {
		u.LastUpdate = *wire.LastUpdate
	}
	if wire.LastAction != nil {
		u.LastAction = *wire.LastAction
	}
	return nil
}
