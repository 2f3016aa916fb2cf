package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"braindrop/internal/logger"
	"braindrop/models"
)

// Keys used in the meta table.
const (
	metaKeyUser           = "user"
	metaKeyLastDownloaded = "last_downloaded"
)

// metaRepository is the SQLite-backed implementation of [MetaRepository].
// It stores small bookkeeping values in a key/value table: the user record
// the cache belongs to and the wall-clock time of the last full download.
type metaRepository struct {
	*DB
	logger *logger.Logger
}

// NewMetaRepository constructs a [MetaRepository] backed by the provided
// cache database and logger.
func NewMetaRepository(db *DB, logger *logger.Logger) MetaRepository {
	return &metaRepository{
		DB:     db,
		logger: logger,
	}
}

func (m *metaRepository) SaveUser(ctx context.Context, user models.User) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("error encoding user: %w", err)
	}
	return m.setValue(ctx, metaKeyUser, string(encoded))
}

func (m *metaRepository) GetUser(ctx context.Context) (models.User, error) {
	value, err := m.getValue(ctx, metaKeyUser)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal([]byte(value), &user); err != nil {
		return models.User{}, fmt.Errorf("error decoding user: %w", err)
	}
	return user, nil
}

func (m *metaRepository) SetLastDownloaded(ctx context.Context, at time.Time) error {
	return m.setValue(ctx, metaKeyLastDownloaded, at.UTC().Format(time.RFC3339Nano))
}

func (m *metaRepository) GetLastDownloaded(ctx context.Context) (time.Time, error) {
	value, err := m.getValue(ctx, metaKeyLastDownloaded)
	if err != nil {
		return time.Time{}, err
	}

	at, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing last downloaded time: %w", err)
	}
	return at, nil
}

func (m *metaRepository) setValue(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertMetaQuery(key, value)
	if err != nil {
		return err
	}

	if _, err = m.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "metaRepository.setValue").
			Str("key", key).
			Msg("failed to execute upsert for meta value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (m *metaRepository) getValue(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMetaQuery(key)
	if err != nil {
		return "", err
	}

	var value string
	err = m.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "metaRepository.getValue").
			Str("key", key).
			Msg("failed to query meta value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}
