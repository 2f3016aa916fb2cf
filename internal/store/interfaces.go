package store

import (
	"context"
	"time"

	"braindrop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RaindropRepository is the local cache of bookmark records.
type RaindropRepository interface {
	// ReplaceAll swaps the entire cached set for the given one atomically.
	ReplaceAll(ctx context.Context, raindrops []models.Raindrop) error
	// GetAll returns every cached raindrop, newest first.
	GetAll(ctx context.Context) ([]models.Raindrop, error)
	// Save inserts or updates a single raindrop.
	Save(ctx context.Context, raindrop models.Raindrop) error
	// Delete removes a single raindrop from the cache.
	Delete(ctx context.Context, id int64) error
}

// CollectionRepository is the local cache of the user's collections.
type CollectionRepository interface {
	ReplaceAll(ctx context.Context, collections []models.Collection) error
	GetAll(ctx context.Context) ([]models.Collection, error)
}

// MetaRepository persists cache bookkeeping: the user record the cache was
// downloaded for and when the download happened.
type MetaRepository interface {
	SaveUser(ctx context.Context, user models.User) error
	GetUser(ctx context.Context) (models.User, error)
	SetLastDownloaded(ctx context.Context, at time.Time) error
	GetLastDownloaded(ctx context.Context) (time.Time, error)
}

// TokenStore persists the raindrop.io API token between sessions.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Delete() error
}
