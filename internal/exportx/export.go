// Package exportx converts a record set into the downloadable export
// formats: a JSON document and a delimited-text (CSV) table. Both
// functions are pure over their input; an empty record set yields a
// well-formed empty document or a header-only CSV.
package exportx

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"

	"github.com/emogo-app/emogo/internal/sentiment"
)

// Record is the export projection of one mood entry. Either VideoPath
// (device-local exports) or VideoURL (cloud exports) carries the media
// reference; the unset one is omitted from JSON output.
type Record struct {
	ID             string    `json:"id"`
	SentimentValue int       `json:"-"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	RecordedAt     time.Time `json:"-"`
	VideoPath      string    `json:"videoPath,omitempty"`
	VideoURL       string    `json:"videoUrl,omitempty"`
	CreatedAt      string    `json:"createdAt,omitempty"`
}

// Document is the JSON export envelope.
type Document struct {
	ExportDate  string       `json:"exportDate"`
	RecordCount int          `json:"recordCount"`
	Records     []jsonRecord `json:"records"`
}

type jsonRecord struct {
	Record
	Sentiment      string `json:"sentiment"`
	SentimentValue int    `json:"sentimentValue"`
	Timestamp      string `json:"timestamp"`
}

// csvTimeLayout keeps timestamps spreadsheet-friendly.
const csvTimeLayout = "2006-01-02 15:04:05"

// ToJSON renders records into the export document. exportedAt stamps the
// document; record order is preserved.
func ToJSON(records []Record, exportedAt time.Time) ([]byte, error) {
	doc := Document{
		ExportDate:  exportedAt.UTC().Format(time.RFC3339),
		RecordCount: len(records),
		Records:     make([]jsonRecord, 0, len(records)),
	}
	for _, r := range records {
		doc.Records = append(doc.Records, jsonRecord{
			Record:         r,
			Sentiment:      sentiment.Label(r.SentimentValue),
			SentimentValue: r.SentimentValue,
			Timestamp:      r.RecordedAt.UTC().Format(time.RFC3339),
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ToCSV renders records as delimited text with a fixed six-column header.
// When bom is true a UTF-8 byte-order mark is prepended so spreadsheet
// applications pick up the encoding.
func ToCSV(records []Record, bom bool) ([]byte, error) {
	var buf bytes.Buffer
	if bom {
		buf.WriteString("\ufeff")
	}

	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"seq", "sentiment", "sentimentValue", "longitude", "latitude", "recordedAt"}); err != nil {
		return nil, err
	}
	for i, r := range records {
		row := []string{
			strconv.Itoa(i + 1),
			sentiment.Label(r.SentimentValue),
			strconv.Itoa(r.SentimentValue),
			formatCoord(r.Longitude),
			formatCoord(r.Latitude),
			r.RecordedAt.Format(csvTimeLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatCoord(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
