package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"braindrop/internal/adapter"
	"braindrop/internal/logger"
	"braindrop/internal/store"
	"braindrop/models"
)

// downloadWiggle is the slack given to the server's last-update stamp
// before a redownload is called for. The server bumps the stamp slightly
// after a download finishes, which would otherwise trigger an immediate
// refresh of data we just pulled.
const downloadWiggle = 2 * time.Second

type syncService struct {
	storages *store.Storages
	api      adapter.RaindropAPI
	logger   *logger.Logger
}

// NewSyncService creates a SyncService over the given cache and API
// adapter.
func NewSyncService(storages *store.Storages, api adapter.RaindropAPI, log *logger.Logger) SyncService {
	return &syncService{storages: storages, api: api, logger: log}
}

// Download implements SyncService. The trash is downloaded separately
// because the server excludes it from the all-collection; the progress
// count keeps running across both passes.
func (s *syncService) Download(ctx context.Context, progress func(count int)) error {
	log := s.logger.GetChildLogger().With().Str("func", "Download").Logger()
	started := time.Now()

	user, err := s.api.User(ctx)
	if err != nil {
		return fmt.Errorf("download user: %w", err)
	}

	raindrops, err := s.api.Raindrops(ctx, int64(models.CollectionAll), progress)
	if err != nil {
		return fmt.Errorf("download raindrops: %w", err)
	}

	trashProgress := progress
	if progress != nil {
		downloaded := len(raindrops)
		trashProgress = func(count int) { progress(downloaded + count) }
	}
	trashed, err := s.api.Raindrops(ctx, int64(models.CollectionTrash), trashProgress)
	if err != nil {
		return fmt.Errorf("download trash: %w", err)
	}
	raindrops = append(raindrops, trashed...)

	roots, err := s.api.Collections(ctx, true)
	if err != nil {
		return fmt.Errorf("download collections: %w", err)
	}
	children, err := s.api.Collections(ctx, false)
	if err != nil {
		return fmt.Errorf("download child collections: %w", err)
	}
	collections := append(roots, children...)

	if err = s.storages.Raindrops.ReplaceAll(ctx, raindrops); err != nil {
		return fmt.Errorf("replace cached raindrops: %w", err)
	}
	if err = s.storages.Collections.ReplaceAll(ctx, collections); err != nil {
		return fmt.Errorf("replace cached collections: %w", err)
	}
	if err = s.storages.Meta.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	if err = s.storages.Meta.SetLastDownloaded(ctx, time.Now().UTC()); err != nil {
		return fmt.Errorf("stamp download time: %w", err)
	}

	log.Info().
		Int("raindrops", len(raindrops)).
		Int("collections", len(collections)).
		Dur("took", time.Since(started)).
		Msg("full download finished")
	return nil
}

// NeedsRedownload implements SyncService.
func (s *syncService) NeedsRedownload(ctx context.Context) (bool, error) {
	lastDownloaded, err := s.storages.Meta.GetLastDownloaded(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read last download time: %w", err)
	}
	if lastDownloaded.IsZero() {
		return true, nil
	}

	user, err := s.api.User(ctx)
	if err != nil {
		return false, fmt.Errorf("check server state: %w", err)
	}
	if user.LastUpdate.IsZero() {
		return false, nil
	}

	return user.LastUpdate.After(lastDownloaded.Add(downloadWiggle)), nil
}
