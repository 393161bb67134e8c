package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rgopal/chitfund/internal/models"
)

func TestFetch(t *testing.T) {
	t.Run("returns the stored snapshot", func(t *testing.T) {
		snap := models.Snapshot{
			Chits:       []models.ChitGroup{{ChitGroupID: "g1", Name: "Remote Chit"}},
			LastUpdated: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || r.URL.Path != "/api/sync" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]any{"data": snap})
		}))
		defer server.Close()

		got, err := New(server.URL).Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if got == nil || len(got.Chits) != 1 || got.Chits[0].ChitGroupID != "g1" {
			t.Errorf("Fetch() = %+v, want the stored snapshot", got)
		}
	})

	t.Run("empty remote yields nil without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":null}`))
		}))
		defer server.Close()

		got, err := New(server.URL).Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if got != nil {
			t.Errorf("Fetch() = %+v, want nil for empty remote", got)
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		if _, err := New(server.URL).Fetch(context.Background()); err == nil {
			t.Error("expected error on 503")
		}
	})
}

func TestPush(t *testing.T) {
	snap := models.Snapshot{
		Chits:       []models.ChitGroup{{ChitGroupID: "g1", Name: "Local Chit"}},
		LastUpdated: time.Now().UTC(),
	}

	t.Run("posts the snapshot and accepts success", func(t *testing.T) {
		var received models.Snapshot
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/api/sync" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			body, _ := io.ReadAll(r.Body)
			json.Unmarshal(body, &received)
			w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		if err := New(server.URL).Push(context.Background(), snap); err != nil {
			t.Fatalf("Push failed: %v", err)
		}
		if len(received.Chits) != 1 || received.Chits[0].ChitGroupID != "g1" {
			t.Errorf("remote received %+v, want the pushed snapshot", received)
		}
	})

	t.Run("success:false is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false}`))
		}))
		defer server.Close()

		if err := New(server.URL).Push(context.Background(), snap); err == nil {
			t.Error("expected error when remote rejects the push")
		}
	})
}

func TestNilClientIsOffline(t *testing.T) {
	var c *Client

	if _, err := c.Fetch(context.Background()); err == nil {
		t.Error("nil client Fetch should fail")
	}
	if err := c.Push(context.Background(), models.Snapshot{}); err == nil {
		t.Error("nil client Push should fail")
	}
}
