// Package protocol defines the JSON payloads exchanged between the EmoGo
// client and the backend record service. Both sides marshal and validate
// against these structures instead of passing loosely-typed maps.
package protocol

// RecordPayload is one record in an upsert request. Timestamp and CreatedAt
// are RFC 3339 strings. VideoBase64 is nil when the client could not read
// the media file; the record is still synced with a null media payload.
type RecordPayload struct {
	ID             int64    `json:"id"`
	Sentiment      string   `json:"sentiment"`
	SentimentValue int      `json:"sentimentValue"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Timestamp      string   `json:"timestamp"`
	CreatedAt      string   `json:"createdAt,omitempty"`
	VideoPath      string   `json:"videoPath"`
	VideoBase64    *string  `json:"videoBase64"`
}

// UploadRequest is the body of all upsert endpoints (/records,
// /records/batch, /records/sync).
type UploadRequest struct {
	ExportDate  string          `json:"exportDate"`
	RecordCount int             `json:"recordCount"`
	Records     []RecordPayload `json:"records"`
}

// RecordError reports a per-record failure inside a batch or sync call.
type RecordError struct {
	RecordID string `json:"recordId"`
	Error    string `json:"error"`
}

// CloudRecord is the server-side record as returned to clients.
type CloudRecord struct {
	ID              string   `json:"id"`
	Sentiment       string   `json:"sentiment"`
	SentimentValue  int      `json:"sentimentValue"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Timestamp       string   `json:"timestamp"`
	VideoURL        *string  `json:"videoUrl"`
	VideoStorageKey *string  `json:"videoStorageKey"`
	IsUploaded      bool     `json:"isUploaded"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// UploadResponse answers a single-record upsert.
type UploadResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Record  *CloudRecord `json:"record"`
}

// BatchResponse answers a batch upsert. Errors is omitted when empty.
type BatchResponse struct {
	Success    bool          `json:"success"`
	Message    string        `json:"message"`
	SavedCount int           `json:"savedCount"`
	ErrorCount int           `json:"errorCount"`
	Errors     []RecordError `json:"errors,omitempty"`
}

// SyncResults carries the per-record outcome of a full resync.
type SyncResults struct {
	Synced []string      `json:"synced"`
	Errors []RecordError `json:"errors"`
}

// SyncResponse answers a full resync.
type SyncResponse struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	SyncedCount int         `json:"syncedCount"`
	ErrorCount  int         `json:"errorCount"`
	Results     SyncResults `json:"results"`
}

// ListResponse answers GET /records.
type ListResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Records []CloudRecord `json:"records"`
}

// VideoInfo is one element of GET /export/videos.
type VideoInfo struct {
	ID           string `json:"id"`
	Sentiment    string `json:"sentiment"`
	Timestamp    string `json:"timestamp"`
	CreatedAt    string `json:"createdAt"`
	VideoURL     string `json:"videoUrl"`
	DownloadLink string `json:"downloadLink"`
}

// VideosResponse answers GET /export/videos.
type VideosResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Videos  []VideoInfo `json:"videos"`
}

// HealthResponse answers GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
