package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"braindrop/internal/logger"
	"braindrop/models"
)

// collectionRepository is the SQLite-backed implementation of
// [CollectionRepository].
type collectionRepository struct {
	*DB
	logger *logger.Logger
}

// NewCollectionRepository constructs a [CollectionRepository] backed by the
// provided cache database and logger.
func NewCollectionRepository(db *DB, logger *logger.Logger) CollectionRepository {
	return &collectionRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceAll swaps the cached collection set inside one transaction.
func (c *collectionRepository) ReplaceAll(ctx context.Context, collections []models.Collection) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.ReplaceAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrOpeningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteAllCollectionsQuery()
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "collectionRepository.ReplaceAll").
			Msg("failed to clear collections table")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for _, collection := range collections {
		query, args, err = buildUpsertCollectionQuery(collection)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "collectionRepository.ReplaceAll").
				Int64("collection_id", collection.ID).
				Msg("failed to insert collection")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return tx.Commit()
}

// GetAll returns every cached collection ordered by sort weight, then title.
func (c *collectionRepository) GetAll(ctx context.Context) ([]models.Collection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCollectionsQuery()
	if err != nil {
		return nil, err
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.GetAll").
			Msg("failed to execute query for getting all collections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	collections := make([]models.Collection, 0, 20)

	for rows.Next() {
		collection, scanErr := scanCollection(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "collectionRepository.GetAll").
				Msg("failed to scan collection row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		collections = append(collections, collection)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "collectionRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return collections, nil
}

// scanCollection reads one row in collectionColumns order.
func scanCollection(row rowScanner) (models.Collection, error) {
	var collection models.Collection
	var created, lastUpdate sql.NullTime
	var cover string

	err := row.Scan(
		&collection.ID,
		&collection.Title,
		&collection.Parent,
		&collection.Color,
		&collection.Count,
		&cover,
		&collection.Expanded,
		&collection.Public,
		&collection.Sort,
		&collection.View,
		&created,
		&lastUpdate,
	)
	if err != nil {
		return models.Collection{}, err
	}

	if created.Valid {
		collection.Created = created.Time
	}
	if lastUpdate.Valid {
		collection.LastUpdate = lastUpdate.Time
	}

	if err = json.Unmarshal([]byte(cover), &collection.Cover); err != nil {
		return models.Collection{}, fmt.Errorf("error decoding cover: %w", err)
	}
	if len(collection.Cover) == 0 {
		collection.Cover = nil
	}

	return collection, nil
}
