package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emogo-app/emogo/internal/common"
	"github.com/emogo-app/emogo/internal/protocol"
)

func TestHealth_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(protocol.HealthResponse{Status: "ok"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", time.Second)
	assert.NoError(t, c.Health(context.Background()))
}

func TestUploadRecord_SendsBodyAndDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/records", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req protocol.UploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 1, req.RecordCount)

		_ = json.NewEncoder(w).Encode(protocol.UploadResponse{Success: true, Message: "record saved"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", time.Second)
	resp, err := c.UploadRecord(context.Background(), &protocol.UploadRequest{
		RecordCount: 1,
		Records:     []protocol.RecordPayload{{ID: 7}},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "record saved", resp.Message)
}

func TestSyncRecords_DecodesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/records/sync", r.URL.Path)
		_ = json.NewEncoder(w).Encode(protocol.SyncResponse{
			Success:     true,
			SyncedCount: 2,
			Results:     protocol.SyncResults{Synced: []string{"1", "2"}, Errors: []protocol.RecordError{}},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", time.Second)
	resp, err := c.SyncRecords(context.Background(), &protocol.UploadRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, resp.Results.Synced)
}

func TestDoJSON_AuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(protocol.HealthResponse{Status: "ok"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "sekrit", time.Second)
	assert.NoError(t, c.Health(context.Background()))
}

func TestDoJSON_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"success":false,"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", time.Second)
	err := c.Health(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrRemote)
	assert.Contains(t, err.Error(), "500")
}

func TestDoJSON_TransportError(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", "", 100*time.Millisecond)
	err := c.Health(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSync)
}
