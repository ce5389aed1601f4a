package records

import (
	"context"

	"github.com/emogo-app/emogo/internal/client/models"
)

// Repository describes CRUD operations over the local record table.
// Implementations are backed by the on-device SQLite database.
type Repository interface {
	// Insert appends one record and returns its generated identifier.
	Insert(ctx context.Context, r *models.Record) (int64, error)

	// GetAll returns all records ordered by capture timestamp descending.
	GetAll(ctx context.Context) ([]models.Record, error)

	// GetByID returns a record by its identifier, or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Record, error)

	// DeleteByID removes a record row. Deleting an id that does not exist
	// is a no-op, not an error.
	DeleteByID(ctx context.Context, id int64) error
}
