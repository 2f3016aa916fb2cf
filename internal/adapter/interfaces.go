// Package adapter provides transport-layer abstractions for communicating
// with the raindrop.io REST API and auxiliary web services.
//
// The primary abstraction is [RaindropAPI], which decouples the service
// layer from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRaindropAPI]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrTooManyRequests]
// for 429).
package adapter

import (
	"context"

	"braindrop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RaindropAPI defines transport-agnostic communication with the
// raindrop.io service. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type RaindropAPI interface {
	// SetToken stores the API token that will be attached to all
	// subsequent requests.
	SetToken(token string)

	// Token returns the API token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// User fetches the authenticated user's record. Because every API
	// call is authenticated, this doubles as the token validity check.
	User(ctx context.Context) (models.User, error)

	// Collections fetches the user's collections. With root true only the
	// top-level collections are returned; with root false only the nested
	// ones.
	Collections(ctx context.Context, root bool) ([]models.Collection, error)

	// Raindrops pages through every raindrop in the given collection.
	// When progress is non-nil it is called after each page with the
	// number of raindrops fetched so far. Local-only collections are
	// rejected with ErrLocalCollection.
	Raindrops(ctx context.Context, collection int64, progress func(count int)) ([]models.Raindrop, error)

	// Tags fetches the tags in use, optionally narrowed to one
	// collection. A nil collection means all tags.
	Tags(ctx context.Context, collection *int64) ([]models.TagData, error)

	// AddRaindrop saves a brand-new raindrop to the server and returns
	// the server-populated record.
	AddRaindrop(ctx context.Context, raindrop models.Raindrop) (models.Raindrop, error)

	// UpdateRaindrop pushes changes to an existing raindrop and returns
	// the server-side record after the update.
	UpdateRaindrop(ctx context.Context, raindrop models.Raindrop) (models.Raindrop, error)

	// RemoveRaindrop deletes a raindrop on the server. Removing a
	// raindrop that is already in the trash deletes it for good.
	RemoveRaindrop(ctx context.Context, id int64) error

	// Suggestions asks the server for tag and collection suggestions for
	// the given raindrop. For a brand-new raindrop the suggestion is made
	// from its link; for an existing one from its server record.
	Suggestions(ctx context.Context, raindrop models.Raindrop) (models.Suggestions, error)
}

// WaybackClient checks link availability in the Internet Archive's Wayback
// Machine.
type WaybackClient interface {
	// HasSnapshot reports whether the Wayback Machine holds an archived
	// copy of the given URL.
	HasSnapshot(ctx context.Context, link string) (bool, error)
}
