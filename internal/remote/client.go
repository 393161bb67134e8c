// Package remote is the client for the cloud snapshot endpoint: a plain
// key-value GET/POST over one JSON document. There is no partial-update verb;
// replicas exchange whole snapshots.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rgopal/chitfund/internal/models"
)

// Client talks to the sync endpoint. A nil *Client is a valid "offline"
// client: Fetch and Push report failure without touching the network.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL (e.g. "https://host"). The
// snapshot lives at <base>/api/sync.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type fetchResponse struct {
	Data *models.Snapshot `json:"data"`
}

type pushResponse struct {
	Success bool `json:"success"`
}

// Fetch retrieves the remote snapshot. Returns (nil, nil) when the remote
// store holds no snapshot yet.
func (c *Client) Fetch(ctx context.Context) (*models.Snapshot, error) {
	if c == nil {
		return nil, fmt.Errorf("no remote configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/sync", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sync fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sync fetch failed: status %d", resp.StatusCode)
	}

	var out fetchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode sync response: %w", err)
	}
	return out.Data, nil
}

// Push replaces the remote snapshot with the given one.
func (c *Client) Push(ctx context.Context, snap models.Snapshot) error {
	if c == nil {
		return fmt.Errorf("no remote configured")
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/sync", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sync push failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sync push failed: status %d", resp.StatusCode)
	}

	var out pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("failed to decode sync response: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("sync push rejected by remote")
	}
	return nil
}
