package records

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emogo-app/emogo/internal/client/models"
	"github.com/emogo-app/emogo/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE records (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  video_path TEXT NOT NULL,
  sentiment INTEGER NOT NULL,
  latitude REAL,
  longitude REAL,
  timestamp INTEGER NOT NULL,
  created_at TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func ptr(v float64) *float64 { return &v }

func TestInsert_GeneratesSequentialIDs(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id1, err := r.Insert(ctx, &models.Record{
		VideoPath: "/data/videos/a.mp4",
		Sentiment: 5,
		Latitude:  ptr(25.03),
		Longitude: ptr(121.56),
		Timestamp: 1700000000000,
		CreatedAt: "2023-11-14T22:13:20Z",
	})
	require.NoError(t, err)

	id2, err := r.Insert(ctx, &models.Record{
		VideoPath: "/data/videos/b.mp4",
		Sentiment: 2,
		Timestamp: 1700000001000,
		CreatedAt: "2023-11-14T22:13:21Z",
	})
	require.NoError(t, err)

	assert.Equal(t, id1+1, id2)
}

func TestGetByID_RoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, err := r.Insert(ctx, &models.Record{
		VideoPath: "/data/videos/a.mp4",
		Sentiment: 4,
		Latitude:  ptr(25.03),
		Longitude: ptr(121.56),
		Timestamp: 1700000000000,
		CreatedAt: "2023-11-14T22:13:20Z",
	})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, "/data/videos/a.mp4", got.VideoPath)
	assert.Equal(t, 4, got.Sentiment)
	require.NotNil(t, got.Latitude)
	assert.InDelta(t, 25.03, *got.Latitude, 1e-9)
	require.NotNil(t, got.Longitude)
	assert.InDelta(t, 121.56, *got.Longitude, 1e-9)
	assert.Equal(t, int64(1700000000000), got.Timestamp)
}

func TestGetByID_NilCoordinates(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, err := r.Insert(ctx, &models.Record{
		VideoPath: "/data/videos/a.mp4",
		Sentiment: 3,
		Timestamp: 1700000000000,
		CreatedAt: "2023-11-14T22:13:20Z",
	})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Latitude)
	assert.Nil(t, got.Longitude)
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByID(context.Background(), 42)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestGetAll_OrderedNewestFirst(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Insert(ctx, &models.Record{VideoPath: "old.mp4", Sentiment: 1, Timestamp: 1000, CreatedAt: "c1"})
	require.NoError(t, err)
	_, err = r.Insert(ctx, &models.Record{VideoPath: "new.mp4", Sentiment: 2, Timestamp: 3000, CreatedAt: "c2"})
	require.NoError(t, err)
	_, err = r.Insert(ctx, &models.Record{VideoPath: "mid.mp4", Sentiment: 3, Timestamp: 2000, CreatedAt: "c3"})
	require.NoError(t, err)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "new.mp4", all[0].VideoPath)
	assert.Equal(t, "mid.mp4", all[1].VideoPath)
	assert.Equal(t, "old.mp4", all[2].VideoPath)
}

func TestGetAll_Empty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	all, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, err := r.Insert(ctx, &models.Record{VideoPath: "a.mp4", Sentiment: 1, Timestamp: 1000, CreatedAt: "c1"})
	require.NoError(t, err)

	require.NoError(t, r.DeleteByID(ctx, id))

	_, err = r.GetByID(ctx, id)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestDeleteByID_MissingIsNoop(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	assert.NoError(t, r.DeleteByID(context.Background(), 999))
}
