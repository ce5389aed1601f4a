package records

import (
	"context"

	"github.com/emogo-app/emogo/internal/server/models"
)

// Repository describes record persistence for the cloud record service.
type Repository interface {
	// Upsert inserts or fully updates a record by id. Last write wins;
	// there is deliberately no version check.
	Upsert(ctx context.Context, r *models.Record) (*models.Record, error)

	// GetByID returns one record or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Record, error)

	// GetAll returns every record ordered by creation time descending.
	GetAll(ctx context.Context) ([]models.Record, error)

	// GetAllWithMedia returns records carrying a media URL, newest first.
	GetAllWithMedia(ctx context.Context) ([]models.Record, error)
}
