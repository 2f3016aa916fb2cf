package service

import "errors"

var (
	// ErrNotDownloaded is returned when an operation needs cached data
	// but the cache has never been downloaded.
	ErrNotDownloaded = errors.New("local data has never been downloaded")

	// ErrUnknownRaindrop is returned when a mutator targets a raindrop
	// the mirror does not hold.
	ErrUnknownRaindrop = errors.New("unknown raindrop")
)
