// Package records provides the SQLite-backed local record store.
package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/emogo-app/emogo/internal/client/models"
	"github.com/emogo-app/emogo/internal/common"
	"github.com/emogo-app/emogo/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Insert appends one record row and returns the generated rowid.
func (r *SQLiteRepository) Insert(ctx context.Context, rec *models.Record) (int64, error) {
	query := `INSERT INTO records (video_path, sentiment, latitude, longitude, timestamp, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		rec.VideoPath, rec.Sentiment, rec.Latitude, rec.Longitude, rec.Timestamp, rec.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to insert record: %w", common.ErrStorage, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get insert id: %w", common.ErrStorage, err)
	}
	return id, nil
}

// GetAll lists all records, newest capture first.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Record, error) {
	query := `SELECT id, video_path, sentiment, latitude, longitude, timestamp, created_at
		FROM records ORDER BY timestamp DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to select records: %w", common.ErrStorage, err)
	}
	defer rows.Close()

	var result []models.Record
	for rows.Next() {
		var item models.Record
		if err := rows.Scan(&item.ID, &item.VideoPath, &item.Sentiment,
			&item.Latitude, &item.Longitude, &item.Timestamp, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns a single record or common.ErrNotFound.
func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Record, error) {
	query := `SELECT id, video_path, sentiment, latitude, longitude, timestamp, created_at
		FROM records WHERE id=?`
	row := r.db.QueryRowContext(ctx, query, id)

	rec := &models.Record{}
	err := row.Scan(&rec.ID, &rec.VideoPath, &rec.Sentiment,
		&rec.Latitude, &rec.Longitude, &rec.Timestamp, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return rec, nil
}

// DeleteByID removes a record row. Zero rows affected is not an error.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("%w: failed to delete record: %w", common.ErrStorage, err)
	}
	return nil
}
