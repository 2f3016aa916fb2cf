// Package service holds the application services sitting between the TUI
// and the outside world: the in-memory data mirror backed by the local
// cache, the full-download sync service, and the background job that
// watches for server-side changes.
package service

import (
	"context"
	"time"

	"braindrop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DataService owns the in-memory mirror of the local cache and keeps it,
// the cache, and the raindrop.io server consistent through the local
// mutators. All group accessors are cheap and safe for concurrent use.
type DataService interface {
	// Load populates the mirror from the local cache.
	Load(ctx context.Context) error

	// All is the group of every non-trashed raindrop.
	All() models.Raindrops

	// Unsorted is the group of raindrops not filed into any collection.
	Unsorted() models.Raindrops

	// Untagged is the group of non-trashed raindrops without tags.
	Untagged() models.Raindrops

	// Broken is the group of non-trashed raindrops with dead links.
	Broken() models.Raindrops

	// Trash is the group of trashed raindrops.
	Trash() models.Raindrops

	// InCollection is the group of raindrops in the given collection.
	// Special collection IDs resolve to the corresponding group above.
	InCollection(id int64) models.Raindrops

	// Rebuild re-bases the group on fresh data, keeping its filter chain.
	Rebuild(group models.Raindrops) models.Raindrops

	// Collection looks a collection up by ID, special IDs included.
	Collection(id int64) (models.Collection, bool)

	// Collections is every cached real collection.
	Collections() []models.Collection

	// ChildrenOf lists the child collections of the given collection,
	// in sidebar order.
	ChildrenOf(parent int64) []models.Collection

	// TagsOf is the tag population of the group.
	TagsOf(group models.Raindrops) []models.TagData

	// User is the user the cache was downloaded for.
	User() models.User

	// LastDownloaded is when the cache was last downloaded, zero if never.
	LastDownloaded() time.Time

	// Add saves a brand-new raindrop to the server and the cache, and
	// returns the server-populated record.
	Add(ctx context.Context, raindrop models.Raindrop) (models.Raindrop, error)

	// Update pushes changes to an existing raindrop and refreshes the
	// cache with the server-side record.
	Update(ctx context.Context, raindrop models.Raindrop) (models.Raindrop, error)

	// Delete removes the raindrop on the server. A non-trashed raindrop
	// moves to the trash; a trashed one is removed for good.
	Delete(ctx context.Context, raindrop models.Raindrop) error

	// Suggestions asks the server for tag and collection suggestions for
	// the raindrop being edited.
	Suggestions(ctx context.Context, raindrop models.Raindrop) (models.Suggestions, error)

	// Wipe empties the local cache and the mirror. Used on logout.
	Wipe(ctx context.Context) error
}

// SyncService performs full downloads from the raindrop.io server and
// decides when one is needed.
type SyncService interface {
	// Download pulls the user record, every raindrop (trash included) and
	// every collection from the server and atomically replaces the local
	// cache. When progress is non-nil it receives the running raindrop
	// count while the download is underway.
	Download(ctx context.Context, progress func(count int)) error

	// NeedsRedownload reports whether the server holds newer data than
	// the local cache. A cache that was never downloaded always needs a
	// download.
	NeedsRedownload(ctx context.Context) (bool, error)
}

// SyncJob periodically re-checks NeedsRedownload in the background and
// notifies the UI when the server has moved on.
type SyncJob interface {
	// Start launches the background check loop. A previously running
	// loop is stopped first. notify is called from the job goroutine
	// whenever a redownload is due.
	Start(ctx context.Context, interval time.Duration, notify func())

	// Stop cancels the loop and waits for it to exit. Safe to call when
	// the job is not running.
	Stop()
}
