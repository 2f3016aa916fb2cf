package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"braindrop/internal/logger"
	"braindrop/models"
)

// raindropRepository is the SQLite-backed implementation of
// [RaindropRepository]. It holds the full bookmark snapshot last downloaded
// from raindrop.io so the client can start offline.
type raindropRepository struct {
	*DB
	logger *logger.Logger
}

// NewRaindropRepository constructs a [RaindropRepository] backed by the
// provided cache database and logger.
func NewRaindropRepository(db *DB, logger *logger.Logger) RaindropRepository {
	return &raindropRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceAll swaps the entire cached raindrop set inside one transaction so
// a crash mid-download never leaves a half-written cache.
func (r *raindropRepository) ReplaceAll(ctx context.Context, raindrops []models.Raindrop) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "raindropRepository.ReplaceAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrOpeningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteAllRaindropsQuery()
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "raindropRepository.ReplaceAll").
			Msg("failed to clear raindrops table")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for _, raindrop := range raindrops {
		query, args, err = buildUpsertRaindropQuery(raindrop)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "raindropRepository.ReplaceAll").
				Int64("raindrop_id", raindrop.ID).
				Msg("failed to insert raindrop")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return tx.Commit()
}

// GetAll returns every cached raindrop, newest first.
func (r *raindropRepository) GetAll(ctx context.Context) ([]models.Raindrop, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRaindropsQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "raindropRepository.GetAll").
			Msg("failed to execute query for getting all raindrops")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	raindrops := make([]models.Raindrop, 0, 50)

	for rows.Next() {
		raindrop, scanErr := scanRaindrop(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "raindropRepository.GetAll").
				Msg("failed to scan raindrop row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		raindrops = append(raindrops, raindrop)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "raindropRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return raindrops, nil
}

// Save upserts a single raindrop, keeping the cache in step with an edit
// that was just confirmed by the server.
func (r *raindropRepository) Save(ctx context.Context, raindrop models.Raindrop) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertRaindropQuery(raindrop)
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "raindropRepository.Save").
			Int64("raindrop_id", raindrop.ID).
			Msg("failed to execute upsert for raindrop")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Delete removes a single raindrop from the cache.
func (r *raindropRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRaindropQuery(id)
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "raindropRepository.Delete").
			Int64("raindrop_id", id).
			Msg("failed to execute delete for raindrop")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRaindrop reads one row in raindropColumns order.
func scanRaindrop(row rowScanner) (models.Raindrop, error) {
	var raindrop models.Raindrop
	var created, lastUpdate sql.NullTime
	var media, tags, raindropType string

	err := row.Scan(
		&raindrop.ID,
		&raindrop.Collection,
		&raindrop.Cover,
		&created,
		&raindrop.Domain,
		&raindrop.Excerpt,
		&raindrop.Note,
		&lastUpdate,
		&raindrop.Link,
		&media,
		&tags,
		&raindrop.Title,
		&raindropType,
		&raindrop.Broken,
		&raindrop.UserID,
	)
	if err != nil {
		return models.Raindrop{}, err
	}

	if created.Valid {
		raindrop.Created = created.Time
	}
	if lastUpdate.Valid {
		raindrop.LastUpdate = lastUpdate.Time
	}
	raindrop.Type = models.RaindropType(raindropType)
	raindrop.Tags = models.StringToTags(tags)

	if err = json.Unmarshal([]byte(media), &raindrop.Media); err != nil {
		return models.Raindrop{}, fmt.Errorf("error decoding media: %w", err)
	}
	if len(raindrop.Media) == 0 {
		raindrop.Media = nil
	}

	return raindrop, nil
}
