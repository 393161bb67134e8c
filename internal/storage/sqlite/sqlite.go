// Package sqlite provides a SQLite-backed implementation of the storage.Local interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/rgopal/chitfund/internal/storage"
)

// Ensure SnapshotStore implements storage.Local
var _ storage.Local = (*SnapshotStore)(nil)

// SnapshotStore persists the serialized snapshot as a single row in SQLite.
// The database is an opaque key-value cell, not a relational mirror of the
// ledger: replication works on whole snapshots, so row-level storage would
// buy nothing and complicate last-write-wins merging.
type SnapshotStore struct {
	db *sql.DB
}

// New creates a new SnapshotStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SnapshotStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

// Close closes the database connection.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// Save overwrites the stored snapshot.
func (s *SnapshotStore) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, data, saved_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		data, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot bytes, or storage.ErrNoSnapshot when the
// cell is empty.
func (s *SnapshotStore) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT data FROM snapshots WHERE id = 1").Scan(&data)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return data, nil
}
