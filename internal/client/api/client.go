// Package api implements the HTTP client for the EmoGo backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/emogo-app/emogo/internal/common"
	"github.com/emogo-app/emogo/internal/protocol"
)

// Client is the backend surface the sync orchestrator depends on.
type Client interface {
	// Health probes the backend liveness endpoint.
	Health(ctx context.Context) error

	// UploadRecord posts a single-element batch to POST /records.
	UploadRecord(ctx context.Context, req *protocol.UploadRequest) (*protocol.UploadResponse, error)

	// SyncRecords posts a full resync to POST /records/sync.
	SyncRecords(ctx context.Context, req *protocol.UploadRequest) (*protocol.SyncResponse, error)
}

// HTTPClient implements Client over net/http. Media uploads ride inside the
// JSON body, so the timeout is generous rather than interactive.
type HTTPClient struct {
	baseURL   string
	authToken string
	hc        *http.Client
}

// NewHTTPClient returns a client for the backend at baseURL. An empty
// authToken sends no Authorization header.
func NewHTTPClient(baseURL string, authToken string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		authToken: authToken,
		hc:        &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Health(ctx context.Context) error {
	var resp protocol.HealthResponse
	return c.doJSON(ctx, http.MethodGet, "/health", nil, &resp)
}

func (c *HTTPClient) UploadRecord(ctx context.Context, req *protocol.UploadRequest) (*protocol.UploadResponse, error) {
	var resp protocol.UploadResponse
	if err := c.doJSON(ctx, http.MethodPost, "/records", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SyncRecords(ctx context.Context, req *protocol.UploadRequest) (*protocol.SyncResponse, error) {
	var resp protocol.SyncResponse
	if err := c.doJSON(ctx, http.MethodPost, "/records/sync", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doJSON sends one request and decodes the JSON response. A transport-level
// failure maps to common.ErrSync, a non-2xx status to common.ErrRemote.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrSync, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: server responded %d: %s", common.ErrRemote, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
