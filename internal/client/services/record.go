// Package services implements the client-side record lifecycle: durable
// local capture, listing, deletion, export, and the cloud sync flow.
package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/emogo-app/emogo/internal/client/api"
	"github.com/emogo-app/emogo/internal/client/media"
	"github.com/emogo-app/emogo/internal/client/models"
	"github.com/emogo-app/emogo/internal/client/repositories/records"
	"github.com/emogo-app/emogo/internal/common"
	"github.com/emogo-app/emogo/internal/exportx"
	"github.com/emogo-app/emogo/internal/logging"
	"github.com/emogo-app/emogo/internal/protocol"
	"github.com/emogo-app/emogo/internal/sentiment"
)

// ExportResult reports what a local export produced.
type ExportResult struct {
	Count    int
	JSONPath string
	CSVPath  string
}

// RecordService is the client-facing contract over the local record store
// and the sync orchestrator.
type RecordService interface {
	// Save captures one entry: the source video is copied into the managed
	// media directory and one row is appended. If the local store cannot
	// take the write, a fallback identifier derived from the current time
	// is returned and the write is dropped with a warning (degrade, not
	// fail).
	Save(ctx context.Context, videoSrc string, sentimentValue int, lat, lon *float64) (int64, error)

	// List returns all records, newest capture first. An unavailable store
	// yields an empty slice, not an error.
	List(ctx context.Context) ([]models.Record, error)

	// Get returns one record or common.ErrNotFound.
	Get(ctx context.Context, id int64) (*models.Record, error)

	// Delete removes the record's media file (best effort) and its row.
	// Deleting an id that does not exist is a no-op.
	Delete(ctx context.Context, id int64) error

	// Export writes the full record set as JSON and CSV files under the
	// data directory. Zero records produces no files.
	Export(ctx context.Context) (*ExportResult, error)

	// UploadOne pushes a single record, with its media, to the backend.
	UploadOne(ctx context.Context, id int64) (*protocol.UploadResponse, error)

	// SyncAll pushes every local record to the backend in one batched
	// request, tolerating missing media per record.
	SyncAll(ctx context.Context) (*protocol.SyncResponse, error)

	// Health probes backend reachability.
	Health(ctx context.Context) error
}

type recordService struct {
	client    api.Client
	repo      records.Repository
	media     *media.Store
	exportDir string
	log       logging.Logger
}

// NewRecordService wires the record service over its collaborators.
// Export files are written into exportDir.
func NewRecordService(client api.Client, repo records.Repository, mediaStore *media.Store, exportDir string, log logging.Logger) RecordService {
	return &recordService{client: client, repo: repo, media: mediaStore, exportDir: exportDir, log: log}
}

func (s *recordService) Save(ctx context.Context, videoSrc string, sentimentValue int, lat, lon *float64) (int64, error) {
	if !sentiment.Valid(sentimentValue) {
		return 0, fmt.Errorf("%w: sentiment must be between %d and %d", common.ErrValidation, sentiment.Min, sentiment.Max)
	}

	stored, err := s.media.Import(videoSrc)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	rec := &models.Record{
		VideoPath: stored,
		Sentiment: sentimentValue,
		Latitude:  lat,
		Longitude: lon,
		Timestamp: now.UnixMilli(),
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	id, err := s.repo.Insert(ctx, rec)
	if err != nil {
		// Degrade-not-fail: hand back a time-derived identifier and drop
		// the write. The copied media file is cleaned up since no row
		// references it.
		s.log.Warn(ctx, "local store unavailable, record dropped", "error", err)
		if rmErr := s.media.Remove(stored); rmErr != nil {
			s.log.Warn(ctx, "could not remove orphaned video", "path", stored, "error", rmErr)
		}
		return now.UnixMilli(), nil
	}

	return id, nil
}

func (s *recordService) List(ctx context.Context) ([]models.Record, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Warn(ctx, "could not list records", "error", err)
		return []models.Record{}, nil
	}
	return rows, nil
}

func (s *recordService) Get(ctx context.Context, id int64) (*models.Record, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *recordService) Delete(ctx context.Context, id int64) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Deleting a missing id is a defined no-op.
			return nil
		}
		return err
	}

	if rec.VideoPath != "" {
		if err := s.media.Remove(rec.VideoPath); err != nil {
			s.log.Warn(ctx, "could not delete video file", "path", rec.VideoPath, "error", err)
		}
	}

	return s.repo.DeleteByID(ctx, id)
}

func (s *recordService) Export(ctx context.Context) (*ExportResult, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving records: %w", err)
	}
	if len(rows) == 0 {
		return &ExportResult{}, nil
	}

	exported := make([]exportx.Record, 0, len(rows))
	for _, r := range rows {
		exported = append(exported, exportx.Record{
			ID:             fmt.Sprintf("%d", r.ID),
			SentimentValue: r.Sentiment,
			Latitude:       r.Latitude,
			Longitude:      r.Longitude,
			RecordedAt:     r.RecordedAt(),
			VideoPath:      r.VideoPath,
			CreatedAt:      r.CreatedAt,
		})
	}

	now := time.Now()
	jsonData, err := exportx.ToJSON(exported, now)
	if err != nil {
		return nil, fmt.Errorf("error encoding export: %w", err)
	}
	csvData, err := exportx.ToCSV(exported, true)
	if err != nil {
		return nil, fmt.Errorf("error encoding export: %w", err)
	}

	if err := os.MkdirAll(s.exportDir, 0o770); err != nil {
		return nil, fmt.Errorf("error creating export dir: %w", err)
	}

	base := fmt.Sprintf("emogo_export_%d", now.UnixMilli())
	jsonPath := filepath.Join(s.exportDir, base+".json")
	csvPath := filepath.Join(s.exportDir, base+".csv")

	if err := os.WriteFile(jsonPath, jsonData, 0o660); err != nil {
		return nil, fmt.Errorf("error writing export: %w", err)
	}
	if err := os.WriteFile(csvPath, csvData, 0o660); err != nil {
		return nil, fmt.Errorf("error writing export: %w", err)
	}

	return &ExportResult{Count: len(rows), JSONPath: jsonPath, CSVPath: csvPath}, nil
}

func (s *recordService) UploadOne(ctx context.Context, id int64) (*protocol.UploadResponse, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving record: %w", err)
	}

	data, err := s.media.Read(rec.VideoPath)
	if err != nil {
		return nil, err
	}
	encoded := base64.StdEncoding.EncodeToString(data)

	payload := recordPayload(rec, &encoded)
	req := &protocol.UploadRequest{
		ExportDate:  time.Now().UTC().Format(time.RFC3339),
		RecordCount: 1,
		Records:     []protocol.RecordPayload{payload},
	}

	return s.client.UploadRecord(ctx, req)
}

func (s *recordService) SyncAll(ctx context.Context) (*protocol.SyncResponse, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving records: %w", err)
	}
	if len(rows) == 0 {
		return &protocol.SyncResponse{Success: true, Message: "nothing to sync"}, nil
	}

	payloads := make([]protocol.RecordPayload, 0, len(rows))
	for i := range rows {
		rec := &rows[i]

		// A record whose media file is gone is still synced, with a null
		// media payload.
		var encoded *string
		if data, err := s.media.Read(rec.VideoPath); err != nil {
			s.log.Warn(ctx, "could not read video, syncing without media", "id", rec.ID, "error", err)
		} else {
			e := base64.StdEncoding.EncodeToString(data)
			encoded = &e
		}

		payloads = append(payloads, recordPayload(rec, encoded))
	}

	req := &protocol.UploadRequest{
		ExportDate:  time.Now().UTC().Format(time.RFC3339),
		RecordCount: len(payloads),
		Records:     payloads,
	}

	return s.client.SyncRecords(ctx, req)
}

func (s *recordService) Health(ctx context.Context) error {
	return s.client.Health(ctx)
}

// recordPayload projects a local record onto the wire shape.
func recordPayload(rec *models.Record, videoBase64 *string) protocol.RecordPayload {
	return protocol.RecordPayload{
		ID:             rec.ID,
		Sentiment:      sentiment.Label(rec.Sentiment),
		SentimentValue: rec.Sentiment,
		Latitude:       rec.Latitude,
		Longitude:      rec.Longitude,
		Timestamp:      rec.RecordedAt().UTC().Format(time.RFC3339),
		CreatedAt:      rec.CreatedAt,
		VideoPath:      rec.VideoPath,
		VideoBase64:    videoBase64,
	}
}
