// Package httpapi exposes the record service over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emogo-app/emogo/internal/common"
	"github.com/emogo-app/emogo/internal/protocol"
	"github.com/emogo-app/emogo/internal/server/models"
)

// RecordService is the application surface the handlers call into.
type RecordService interface {
	Upsert(ctx context.Context, p *protocol.RecordPayload) (*models.Record, error)
	UpsertAll(ctx context.Context, payloads []protocol.RecordPayload) ([]models.Record, []protocol.RecordError)
	List(ctx context.Context) ([]models.Record, error)
	ListVideos(ctx context.Context) ([]models.Record, error)
	VideoRedirectURL(ctx context.Context, id string, forceDownload bool) (string, error)
	ExportJSON(ctx context.Context) ([]byte, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

// RecordHandler binds the HTTP routes to the record service.
type RecordHandler struct {
	svc RecordService
}

func NewRecordHandler(svc RecordService) *RecordHandler {
	return &RecordHandler{svc: svc}
}

// Index describes the API surface for anyone probing the root URL.
func (h *RecordHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "EmoGo record service",
		"endpoints": gin.H{
			"health":        "GET /health",
			"upload":        "POST /records",
			"batchUpload":   "POST /records/batch",
			"sync":          "POST /records/sync",
			"list":          "GET /records",
			"video":         "GET /records/:id/video",
			"export":        "GET /export?format=json|csv",
			"videoList":     "GET /export/videos",
			"videoDownload": "GET /export/download/:id",
		},
	})
}

func (h *RecordHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, protocol.HealthResponse{
		Status:    "ok",
		Message:   "record service is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// UpsertRecord handles a single-record upload. The body shares the envelope
// with the batch endpoints; only the first record is applied.
func (h *RecordHandler) UpsertRecord(c *gin.Context) {
	req, ok := h.bindUpload(c)
	if !ok {
		return
	}

	rec, err := h.svc.Upsert(c.Request.Context(), &req.Records[0])
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, protocol.UploadResponse{
		Success: true,
		Message: "record saved",
		Record:  cloudRecord(rec),
	})
}

// BatchUpsert applies every record in the request, collecting per-record
// errors. The call answers 200 with success true even when some elements
// failed; errorCount and errors carry the partial outcome.
func (h *RecordHandler) BatchUpsert(c *gin.Context) {
	req, ok := h.bindUpload(c)
	if !ok {
		return
	}

	saved, errs := h.svc.UpsertAll(c.Request.Context(), req.Records)

	c.JSON(http.StatusOK, protocol.BatchResponse{
		Success:    true,
		Message:    fmt.Sprintf("processed %d records", len(req.Records)),
		SavedCount: len(saved),
		ErrorCount: len(errs),
		Errors:     errs,
	})
}

// Sync applies a full client resync. Same mechanics as BatchUpsert with a
// response shaped for the sync flow.
func (h *RecordHandler) Sync(c *gin.Context) {
	req, ok := h.bindUpload(c)
	if !ok {
		return
	}

	saved, errs := h.svc.UpsertAll(c.Request.Context(), req.Records)

	synced := make([]string, 0, len(saved))
	for _, r := range saved {
		synced = append(synced, r.ID)
	}
	if errs == nil {
		errs = []protocol.RecordError{}
	}

	c.JSON(http.StatusOK, protocol.SyncResponse{
		Success:     true,
		Message:     fmt.Sprintf("synced %d of %d records", len(synced), len(req.Records)),
		SyncedCount: len(synced),
		ErrorCount:  len(errs),
		Results:     protocol.SyncResults{Synced: synced, Errors: errs},
	})
}

func (h *RecordHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]protocol.CloudRecord, 0, len(rows))
	for i := range rows {
		out = append(out, *cloudRecord(&rows[i]))
	}

	c.JSON(http.StatusOK, protocol.ListResponse{
		Success: true,
		Count:   len(out),
		Records: out,
	})
}

// Video redirects to the media object of one record. ?download=true asks
// the host to serve it as an attachment.
func (h *RecordHandler) Video(c *gin.Context) {
	force := c.Query("download") == "true"
	url, err := h.svc.VideoRedirectURL(c.Request.Context(), c.Param("id"), force)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// Export streams the full record set as a downloadable document. The format
// query selects json (default) or csv.
func (h *RecordHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	name := fmt.Sprintf("emogo_export_%s", time.Now().UTC().Format("20060102"))

	switch c.DefaultQuery("format", "json") {
	case "csv":
		data, err := h.svc.ExportCSV(ctx)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", name))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	case "json":
		data, err := h.svc.ExportJSON(ctx)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.json", name))
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	default:
		c.JSON(http.StatusBadRequest, protocol.ErrorResponse{Error: "unknown export format"})
	}
}

// Videos lists the records that carry uploaded media with ready-to-use
// view and download links.
func (h *RecordHandler) Videos(c *gin.Context) {
	rows, err := h.svc.ListVideos(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	videos := make([]protocol.VideoInfo, 0, len(rows))
	for _, r := range rows {
		info := protocol.VideoInfo{
			ID:           r.ID,
			Sentiment:    r.Sentiment,
			Timestamp:    r.RecordedAt.UTC().Format(time.RFC3339),
			CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
			DownloadLink: "/export/download/" + r.ID,
		}
		if r.VideoURL != nil {
			info.VideoURL = *r.VideoURL
		}
		videos = append(videos, info)
	}

	c.JSON(http.StatusOK, protocol.VideosResponse{
		Success: true,
		Count:   len(videos),
		Videos:  videos,
	})
}

// Download redirects to the media object served as an attachment.
func (h *RecordHandler) Download(c *gin.Context) {
	url, err := h.svc.VideoRedirectURL(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// bindUpload decodes the shared upload envelope and rejects an empty
// record list.
func (h *RecordHandler) bindUpload(c *gin.Context) (*protocol.UploadRequest, bool) {
	var req protocol.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, protocol.ErrorResponse{Error: "invalid json body"})
		return nil, false
	}
	if len(req.Records) == 0 {
		c.JSON(http.StatusBadRequest, protocol.ErrorResponse{Error: "no records provided"})
		return nil, false
	}
	return &req, true
}

func (h *RecordHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, protocol.ErrorResponse{Error: "not found"})
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, protocol.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, protocol.ErrorResponse{Error: err.Error()})
	}
}

func cloudRecord(r *models.Record) *protocol.CloudRecord {
	return &protocol.CloudRecord{
		ID:              r.ID,
		Sentiment:       r.Sentiment,
		SentimentValue:  r.SentimentValue,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		Timestamp:       r.RecordedAt.UTC().Format(time.RFC3339),
		VideoURL:        r.VideoURL,
		VideoStorageKey: r.VideoStorageKey,
		IsUploaded:      r.IsUploaded,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
