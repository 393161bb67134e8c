package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/rgopal/chitfund/internal/models"
)

// SnapshotBlob is the server side of the remote store: one JSON document
// behind GET/POST, backed by a file. There is no partial-update verb; the
// whole snapshot is replaced on every POST.
type SnapshotBlob struct {
	mu   sync.Mutex
	path string
}

// NewSnapshotBlob creates the blob store at the given file path.
func NewSnapshotBlob(path string) *SnapshotBlob {
	return &SnapshotBlob{path: path}
}

// Get returns {data: <snapshot>} or {data: null} when nothing is stored.
func (b *SnapshotBlob) Get(c *gin.Context) {
	b.mu.Lock()
	data, err := os.ReadFile(b.path)
	b.mu.Unlock()

	if errors.Is(err, os.ErrNotExist) {
		c.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}
	if err != nil {
		slog.Error("Snapshot blob read failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sync failed"})
		return
	}

	c.Header("Content-Type", "application/json")
	c.String(http.StatusOK, `{"data":%s}`, data)
}

// Put replaces the stored snapshot with the request body.
func (b *SnapshotBlob) Put(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}
	if !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be JSON"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		slog.Error("Snapshot blob mkdir failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sync failed"})
		return
	}
	if err := os.WriteFile(b.path, body, 0644); err != nil {
		slog.Error("Snapshot blob write failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sync failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SyncStatus reports the dirty and syncing flags.
func (h *Handler) SyncStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"dirty":   h.store.Dirty(),
		"syncing": h.store.Syncing(),
	}})
}

// TriggerSync pushes the snapshot to the remote store immediately. The
// result is a plain boolean; a failed push keeps the dirty flag set so a
// later trigger retries.
func (h *Handler) TriggerSync(c *gin.Context) {
	ok := h.store.SyncNow(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

// Backup streams the serialized snapshot for download.
func (h *Handler) Backup(c *gin.Context) {
	data, err := h.store.Serialized()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to serialize snapshot"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="chitfund_backup.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

// Restore replaces the full state from an uploaded backup.
func (h *Handler) Restore(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "unreadable body"})
		return
	}
	if err := h.store.Restore(body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid backup", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "restored"})
}

// GetSettings returns the settings singleton.
func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.store.Settings()})
}

// UpdateSettings replaces the settings singleton.
func (h *Handler) UpdateSettings(c *gin.Context) {
	var settings models.MasterSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid settings", "error": err.Error()})
		return
	}
	h.store.UpdateSettings(settings)
	c.JSON(http.StatusOK, gin.H{"data": settings})
}
