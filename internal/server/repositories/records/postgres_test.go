package records

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emogo-app/emogo/internal/common"
	"github.com/emogo-app/emogo/internal/server/models"
)

var colNames = []string{
	"id", "sentiment", "sentiment_value", "latitude", "longitude", "recorded_at",
	"video_url", "video_storage_key", "is_uploaded", "created_at", "updated_at",
}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func recordRow(id string, now time.Time) *sqlmock.Rows {
	url := "http://127.0.0.1:9000/emogo/videos/video_" + id + "_1.mp4"
	key := "videos/video_" + id + "_1.mp4"
	return sqlmock.NewRows(colNames).
		AddRow(id, "good", 4, 25.03, 121.56, now, url, key, true, now, now)
}

func TestUpsert_ReturnsSavedRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	lat, lng := 25.03, 121.56
	url := "http://127.0.0.1:9000/emogo/videos/video_7_1.mp4"
	key := "videos/video_7_1.mp4"

	mock.ExpectQuery(`(?s)INSERT INTO records.*ON CONFLICT \(id\).*DO UPDATE SET.*RETURNING`).
		WithArgs("7", "good", 4, lat, lng, now, url, key, true).
		WillReturnRows(recordRow("7", now))

	saved, err := repo.Upsert(context.Background(), &models.Record{
		ID:              "7",
		Sentiment:       "good",
		SentimentValue:  4,
		Latitude:        &lat,
		Longitude:       &lng,
		RecordedAt:      now,
		VideoURL:        &url,
		VideoStorageKey: &key,
		IsUploaded:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "7", saved.ID)
	assert.Equal(t, "good", saved.Sentiment)
	assert.Equal(t, 4, saved.SentimentValue)
	assert.True(t, saved.IsUploaded)
	require.NotNil(t, saved.VideoURL)
	assert.Equal(t, url, *saved.VideoURL)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)INSERT INTO records`).
		WillReturnError(errors.New("boom"))

	_, err := repo.Upsert(context.Background(), &models.Record{ID: "7"})
	require.Error(t, err)
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`(?s)SELECT.*FROM records WHERE id=\$1`).
		WithArgs("7").
		WillReturnRows(recordRow("7", now))

	rec, err := repo.GetByID(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "7", rec.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT.*FROM records WHERE id=\$1`).
		WithArgs("404").
		WillReturnRows(sqlmock.NewRows(colNames))

	_, err := repo.GetByID(context.Background(), "404")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestGetAll_ScansAllRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(colNames).
		AddRow("2", "good", 4, nil, nil, now, nil, nil, true, now, now).
		AddRow("1", "bad", 2, nil, nil, now, nil, nil, true, now, now)

	mock.ExpectQuery(`(?s)SELECT.*FROM records ORDER BY created_at DESC`).
		WillReturnRows(rows)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2", all[0].ID)
	assert.Equal(t, "1", all[1].ID)
	assert.Nil(t, all[0].VideoURL)
}

func TestGetAllWithMedia_FiltersOnVideoURL(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`(?s)SELECT.*FROM records WHERE video_url IS NOT NULL ORDER BY created_at DESC`).
		WillReturnRows(recordRow("7", now))

	all, err := repo.GetAllWithMedia(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].VideoURL)
	require.NoError(t, mock.ExpectationsWereMet())
}
