// Package services implements the cloud record service: idempotent
// upsert-by-id with pass-through media storage, batch application, and
// export rendering.
package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/emogo-app/emogo/internal/common"
	"github.com/emogo-app/emogo/internal/exportx"
	"github.com/emogo-app/emogo/internal/logging"
	"github.com/emogo-app/emogo/internal/protocol"
	"github.com/emogo-app/emogo/internal/sentiment"
	"github.com/emogo-app/emogo/internal/server/media"
	"github.com/emogo-app/emogo/internal/server/models"
	"github.com/emogo-app/emogo/internal/server/repositories/records"
)

// RecordService owns the write path and the read projections of the record
// store.
type RecordService struct {
	repo    records.Repository
	gateway media.Gateway
	log     logging.Logger

	// now is swappable in tests.
	now func() time.Time
}

// NewRecordService wires the service over its repository and media gateway.
func NewRecordService(repo records.Repository, gateway media.Gateway, log logging.Logger) *RecordService {
	return &RecordService{repo: repo, gateway: gateway, log: log, now: time.Now}
}

// Upsert applies one record payload: optional media upload, then
// insert-or-update keyed by the client identifier. A media upload failure
// is logged and the metadata still persisted; a media object the saved
// record no longer references is deleted from the host best-effort.
func (s *RecordService) Upsert(ctx context.Context, p *protocol.RecordPayload) (*models.Record, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("%w: missing record id", common.ErrValidation)
	}
	id := strconv.FormatInt(p.ID, 10)

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up record: %w", err)
		}
		existing = nil
	}

	var videoURL, storageKey *string
	if p.VideoBase64 != nil && *p.VideoBase64 != "" {
		data, decErr := base64.StdEncoding.DecodeString(*p.VideoBase64)
		if decErr != nil {
			s.log.Warn(ctx, "invalid media payload, persisting without media", "id", id, "error", decErr)
		} else {
			key := fmt.Sprintf("videos/video_%s_%d.mp4", id, s.now().UnixMilli())
			res, upErr := s.gateway.Upload(ctx, key, data)
			if upErr != nil {
				// Upload failure is non-fatal to metadata persistence.
				s.log.Warn(ctx, "media upload failed", "id", id, "error", upErr)
			} else {
				videoURL = &res.URL
				storageKey = &res.Key
			}
		}
	}

	rec := &models.Record{
		ID:              id,
		Sentiment:       sentimentLabel(p),
		SentimentValue:  p.SentimentValue,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		RecordedAt:      parseTimestamp(p.Timestamp, s.now),
		VideoURL:        videoURL,
		VideoStorageKey: storageKey,
		IsUploaded:      true,
	}

	saved, err := s.repo.Upsert(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	// The saved record no longer references the previous object, whether
	// it was replaced by a new upload or overwritten by a metadata-only
	// resend. Remove the orphan from the host; failure is logged, never
	// propagated.
	if existing != nil && existing.VideoStorageKey != nil &&
		(storageKey == nil || *existing.VideoStorageKey != *storageKey) {
		if delErr := s.gateway.Delete(ctx, *existing.VideoStorageKey); delErr != nil {
			s.log.Warn(ctx, "could not delete old media", "key", *existing.VideoStorageKey, "error", delErr)
		}
	}

	return saved, nil
}

// UpsertAll applies Upsert to each payload independently, collecting
// per-record errors. The call itself never fails because elements failed.
func (s *RecordService) UpsertAll(ctx context.Context, payloads []protocol.RecordPayload) ([]models.Record, []protocol.RecordError) {
	var saved []models.Record
	var errs []protocol.RecordError

	for i := range payloads {
		p := &payloads[i]
		rec, err := s.Upsert(ctx, p)
		if err != nil {
			errs = append(errs, protocol.RecordError{
				RecordID: strconv.FormatInt(p.ID, 10),
				Error:    err.Error(),
			})
			continue
		}
		saved = append(saved, *rec)
	}

	return saved, errs
}

// List returns every record, newest first.
func (s *RecordService) List(ctx context.Context) ([]models.Record, error) {
	return s.repo.GetAll(ctx)
}

// ListVideos returns the records carrying uploaded media, newest first.
func (s *RecordService) ListVideos(ctx context.Context) ([]models.Record, error) {
	return s.repo.GetAllWithMedia(ctx)
}

// VideoRedirectURL resolves the media URL for one record, preferring a
// fresh presigned link when the storage key is known. common.ErrNotFound is
// returned when the record is absent or has no media.
func (s *RecordService) VideoRedirectURL(ctx context.Context, id string, forceDownload bool) (string, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if rec.VideoURL == nil {
		// A record without media reads as absent for download purposes.
		return "", common.ErrNotFound
	}

	if rec.VideoStorageKey != nil {
		url, err := s.gateway.PresignGet(ctx, *rec.VideoStorageKey, forceDownload)
		if err == nil {
			return url, nil
		}
		s.log.Warn(ctx, "presign failed, falling back to stored URL", "id", id, "error", err)
	}

	return *rec.VideoURL, nil
}

// ExportJSON renders the full record set as the JSON export document.
func (s *RecordService) ExportJSON(ctx context.Context) ([]byte, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return exportx.ToJSON(exportRecords(rows), s.now())
}

// ExportCSV renders the full record set as BOM-prefixed delimited text.
func (s *RecordService) ExportCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return exportx.ToCSV(exportRecords(rows), true)
}

func exportRecords(rows []models.Record) []exportx.Record {
	out := make([]exportx.Record, 0, len(rows))
	for _, r := range rows {
		rec := exportx.Record{
			ID:             r.ID,
			SentimentValue: r.SentimentValue,
			Latitude:       r.Latitude,
			Longitude:      r.Longitude,
			RecordedAt:     r.RecordedAt,
			CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if r.VideoURL != nil {
			rec.VideoURL = *r.VideoURL
		}
		out = append(out, rec)
	}
	return out
}

// sentimentLabel trusts the client-provided label, falling back to the
// value-resolved one.
func sentimentLabel(p *protocol.RecordPayload) string {
	if p.Sentiment != "" {
		return p.Sentiment
	}
	return sentiment.Label(p.SentimentValue)
}

// parseTimestamp accepts RFC 3339; anything else resolves to the current
// time, matching the store's default.
func parseTimestamp(s string, now func() time.Time) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return now()
}
