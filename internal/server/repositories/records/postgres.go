// Package records provides the PostgreSQL-backed repository for cloud-side
// record persistence.
package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/emogo-app/emogo/internal/common"
	"github.com/emogo-app/emogo/internal/dbx"
	"github.com/emogo-app/emogo/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const recordColumns = `id, sentiment, sentiment_value, latitude, longitude, recorded_at,
	video_url, video_storage_key, is_uploaded, created_at, updated_at`

// Upsert inserts or overwrites a record by id. Concurrent upserts to the
// same id race with last-write-wins semantics.
func (r *PostgresRepository) Upsert(ctx context.Context, rec *models.Record) (*models.Record, error) {
	query := `
		INSERT INTO records (id, sentiment, sentiment_value, latitude, longitude, recorded_at,
			video_url, video_storage_key, is_uploaded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id)
		DO UPDATE SET
			sentiment = EXCLUDED.sentiment,
			sentiment_value = EXCLUDED.sentiment_value,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			recorded_at = EXCLUDED.recorded_at,
			video_url = EXCLUDED.video_url,
			video_storage_key = EXCLUDED.video_storage_key,
			is_uploaded = EXCLUDED.is_uploaded,
			updated_at = now()
		RETURNING ` + recordColumns
	row := r.db.QueryRowContext(ctx, query,
		rec.ID, rec.Sentiment, rec.SentimentValue, rec.Latitude, rec.Longitude, rec.RecordedAt,
		rec.VideoURL, rec.VideoStorageKey, rec.IsUploaded)

	saved, err := scanRecord(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert record: %w", err)
	}
	return saved, nil
}

// GetByID returns one record or common.ErrNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id=$1`
	row := r.db.QueryRowContext(ctx, query, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return rec, nil
}

// GetAll lists every record, newest first.
func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records ORDER BY created_at DESC`
	return r.selectRecords(ctx, query)
}

// GetAllWithMedia lists records with an uploaded media URL, newest first.
func (r *PostgresRepository) GetAllWithMedia(ctx context.Context) ([]models.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE video_url IS NOT NULL ORDER BY created_at DESC`
	return r.selectRecords(ctx, query)
}

func (r *PostgresRepository) selectRecords(ctx context.Context, query string, args ...any) ([]models.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	var result []models.Record
	for rows.Next() {
		var item models.Record
		if err := rows.Scan(&item.ID, &item.Sentiment, &item.SentimentValue,
			&item.Latitude, &item.Longitude, &item.RecordedAt,
			&item.VideoURL, &item.VideoStorageKey, &item.IsUploaded,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanRecord(row *sql.Row) (*models.Record, error) {
	rec := &models.Record{}
	err := row.Scan(&rec.ID, &rec.Sentiment, &rec.SentimentValue,
		&rec.Latitude, &rec.Longitude, &rec.RecordedAt,
		&rec.VideoURL, &rec.VideoStorageKey, &rec.IsUploaded,
		&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}
