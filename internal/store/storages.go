package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	"braindrop/internal/config"
	"braindrop/internal/logger"
)

// Storages groups all local persistence backends into a single value that
// can be passed around the service layer.
type Storages struct {
	// Raindrops is the cached bookmark set.
	Raindrops RaindropRepository
	// Collections is the cached collection set.
	Collections CollectionRepository
	// Meta holds cache bookkeeping (user record, last download time).
	Meta MetaRepository
	// Token persists the API token between sessions.
	Token TokenStore
}

// NewStorages initialises the local persistence layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Resolves the data directory (cfg.DataDir, or the XDG data home).
//  2. Opens the SQLite cache database, creating the file if needed.
//  3. Runs pending schema migrations via [DB.Migrate].
//  4. Wires the repositories and the token file store.
//
// Returns an error if the database cannot be opened or migration fails.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(xdg.DataHome, "braindrop")
	}

	db, err := NewConnectSQLite(context.Background(), dataDir, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Raindrops:   NewRaindropRepository(db, log),
		Collections: NewCollectionRepository(db, log),
		Meta:        NewMetaRepository(db, log),
		Token:       NewFileTokenStore(dataDir),
	}, nil
}
