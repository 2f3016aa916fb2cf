package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"braindrop/internal/adapter"
	"braindrop/internal/logger"
	"braindrop/internal/store"
	"braindrop/models"
)

type dataService struct {
	storages *store.Storages
	api      adapter.RaindropAPI
	logger   *logger.Logger

	mu             sync.RWMutex
	raindrops      []models.Raindrop
	collections    []models.Collection
	user           models.User
	lastDownloaded time.Time
}

// NewDataService creates a DataService over the given cache and API
// adapter. The mirror is empty until Load is called.
func NewDataService(storages *store.Storages, api adapter.RaindropAPI, log *logger.Logger) DataService {
	return &dataService{storages: storages, api: api, logger: log}
}

// Load implements DataService. Missing meta records are not an error: a
// cache that was never downloaded simply loads empty.
func (s *dataService) Load(ctx context.Context) error {
	log := s.logger.GetChildLogger().With().Str("func", "Load").Logger()

	raindrops, err := s.storages.Raindrops.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load raindrops: %w", err)
	}

	collections, err := s.storages.Collections.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load collections: %w", err)
	}

	user, err := s.storages.Meta.GetUser(ctx)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("load user: %w", err)
	}

	lastDownloaded, err := s.storages.Meta.GetLastDownloaded(ctx)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("load last download time: %w", err)
	}

	s.mu.Lock()
	s.raindrops = raindrops
	s.collections = collections
	s.user = user
	s.lastDownloaded = lastDownloaded
	s.mu.Unlock()

	log.Debug().
		Int("raindrops", len(raindrops)).
		Int("collections", len(collections)).
		Msg("local data loaded")
	return nil
}

func (s *dataService) All() models.Raindrops {
	return s.group(int64(models.CollectionAll))
}

func (s *dataService) Unsorted() models.Raindrops {
	return s.group(int64(models.CollectionUnsorted))
}

func (s *dataService) Untagged() models.Raindrops {
	return s.group(int64(models.CollectionUntagged))
}

func (s *dataService) Broken() models.Raindrops {
	return s.group(int64(models.CollectionBroken))
}

func (s *dataService) Trash() models.Raindrops {
	return s.group(int64(models.CollectionTrash))
}

// InCollection implements DataService.
func (s *dataService) InCollection(id int64) models.Raindrops {
	return s.group(id)
}

func (s *dataService) group(id int64) models.Raindrops {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.NewRaindrops(s.titleOf(id), id, s.membersOf(id))
}

// membersOf resolves the base membership of a collection ID, special
// collections included. Callers must hold the lock.
func (s *dataService) membersOf(id int64) []models.Raindrop {
	var keep func(r models.Raindrop) bool

	switch models.SpecialCollection(id) {
	case models.CollectionAll:
		keep = func(r models.Raindrop) bool { return !isTrashed(r) }
	case models.CollectionUnsorted:
		keep = func(r models.Raindrop) bool { return r.IsUnsorted() }
	case models.CollectionUntagged:
		keep = func(r models.Raindrop) bool { return !isTrashed(r) && len(r.Tags) == 0 }
	case models.CollectionBroken:
		keep = func(r models.Raindrop) bool { return !isTrashed(r) && r.Broken }
	case models.CollectionTrash:
		keep = isTrashed
	default:
		keep = func(r models.Raindrop) bool { return r.Collection == id }
	}

	var out []models.Raindrop
	for _, raindrop := range s.raindrops {
		if keep(raindrop) {
			out = append(out, raindrop)
		}
	}
	return out
}

func isTrashed(r models.Raindrop) bool {
	return r.Collection == int64(models.CollectionTrash)
}

// titleOf names a collection ID for group titles. Callers must hold the
// lock.
func (s *dataService) titleOf(id int64) string {
	switch special := models.SpecialCollection(id); special {
	case models.CollectionAll, models.CollectionUnsorted, models.CollectionTrash,
		models.CollectionUntagged, models.CollectionBroken:
		return special.Title()
	}
	for _, collection := range s.collections {
		if collection.ID == id {
			return collection.Title
		}
	}
	return "Unknown"
}

// Rebuild implements DataService. The group keeps its title, source
// collection and filter chain, only the base membership is refreshed.
func (s *dataService) Rebuild(group models.Raindrops) models.Raindrops {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return group.Refiltered(s.membersOf(group.Collection))
}

// Collection implements DataService.
func (s *dataService) Collection(id int64) (models.Collection, bool) {
	switch special := models.SpecialCollection(id); special {
	case models.CollectionAll, models.CollectionUnsorted, models.CollectionTrash,
		models.CollectionUntagged, models.CollectionBroken:
		return special.AsCollection(), true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, collection := range s.collections {
		if collection.ID == id {
			return collection, true
		}
	}
	return models.Collection{}, false
}

// Collections implements DataService.
func (s *dataService) Collections() []models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Collection, len(s.collections))
	copy(out, s.collections)
	return out
}

// ChildrenOf implements DataService. Children come back sorted the way
// the sidebar shows them.
func (s *dataService) ChildrenOf(parent int64) []models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Collection
	for _, collection := range s.collections {
		if collection.Parent == parent {
			out = append(out, collection)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Sort != out[j].Sort {
			return out[i].Sort > out[j].Sort
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// TagsOf implements DataService.
func (s *dataService) TagsOf(group models.Raindrops) []models.TagData {
	return group.Tags()
}

// User implements DataService.
func (s *dataService) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// LastDownloaded implements DataService.
func (s *dataService) LastDownloaded() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastDownloaded
}

// Add implements DataService.
func (s *dataService) Add(ctx context.Context, raindrop models.Raindrop) (models.Raindrop, error) {
	saved, err := s.api.AddRaindrop(ctx, raindrop)
	if err != nil {
		return models.Raindrop{}, fmt.Errorf("add raindrop: %w", err)
	}

	if err = s.storages.Raindrops.Save(ctx, saved); err != nil {
		return models.Raindrop{}, fmt.Errorf("cache added raindrop: %w", err)
	}

	s.mu.Lock()
	// Newest first, matching the cache read order.
	s.raindrops = append([]models.Raindrop{saved}, s.raindrops...)
	s.mu.Unlock()

	return saved, nil
}

// Update implements DataService.
func (s *dataService) Update(ctx context.Context, raindrop models.Raindrop) (models.Raindrop, error) {
	updated, err := s.api.UpdateRaindrop(ctx, raindrop)
	if err != nil {
		return models.Raindrop{}, fmt.Errorf("update raindrop: %w", err)
	}

	if err = s.storages.Raindrops.Save(ctx, updated); err != nil {
		return models.Raindrop{}, fmt.Errorf("cache updated raindrop: %w", err)
	}

	s.mu.Lock()
	s.replaceLocked(updated)
	s.mu.Unlock()

	return updated, nil
}

// Delete implements DataService. The server performs the same two-step
// dance: the first delete trashes, the second one removes.
func (s *dataService) Delete(ctx context.Context, raindrop models.Raindrop) error {
	if err := s.api.RemoveRaindrop(ctx, raindrop.ID); err != nil {
		return fmt.Errorf("remove raindrop: %w", err)
	}

	if isTrashed(raindrop) {
		if err := s.storages.Raindrops.Delete(ctx, raindrop.ID); err != nil {
			return fmt.Errorf("uncache removed raindrop: %w", err)
		}
		s.mu.Lock()
		s.removeLocked(raindrop.ID)
		s.mu.Unlock()
		return nil
	}

	raindrop.Collection = int64(models.CollectionTrash)
	if err := s.storages.Raindrops.Save(ctx, raindrop); err != nil {
		return fmt.Errorf("cache trashed raindrop: %w", err)
	}
	s.mu.Lock()
	s.replaceLocked(raindrop)
	s.mu.Unlock()
	return nil
}

// Suggestions implements DataService.
func (s *dataService) Suggestions(ctx context.Context, raindrop models.Raindrop) (models.Suggestions, error) {
	return s.api.Suggestions(ctx, raindrop)
}

// Wipe implements DataService.
func (s *dataService) Wipe(ctx context.Context) error {
	log := s.logger.GetChildLogger().With().Str("func", "Wipe").Logger()

	if err := s.storages.Raindrops.ReplaceAll(ctx, nil); err != nil {
		return fmt.Errorf("wipe raindrops: %w", err)
	}
	if err := s.storages.Collections.ReplaceAll(ctx, nil); err != nil {
		return fmt.Errorf("wipe collections: %w", err)
	}
	if err := s.storages.Meta.SaveUser(ctx, models.User{}); err != nil {
		return fmt.Errorf("wipe user: %w", err)
	}
	if err := s.storages.Meta.SetLastDownloaded(ctx, time.Time{}); err != nil {
		return fmt.Errorf("wipe last download time: %w", err)
	}

	s.mu.Lock()
	s.raindrops = nil
	s.collections = nil
	s.user = models.User{}
	s.lastDownloaded = time.Time{}
	s.mu.Unlock()

	log.Info().Msg("local data wiped")
	return nil
}

func (s *dataService) replaceLocked(raindrop models.Raindrop) {
	for i := range s.raindrops {
		if s.raindrops[i].ID == raindrop.ID {
			s.raindrops[i] = raindrop
			return
		}
	}
	s.raindrops = append([]models.Raindrop{raindrop}, s.raindrops...)
}

func (s *dataService) removeLocked(id int64) {
	for i := range s.raindrops {
		if s.raindrops[i].ID == id {
			s.raindrops = append(s.raindrops[:i], s.raindrops[i+1:]...)
			return
		}
	}
}
