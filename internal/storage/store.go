// Package storage provides abstractions for durable snapshot persistence.
package storage

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned by Load when no snapshot has ever been saved.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Local defines the interface for the durable local snapshot store: a single
// opaque key holding the serialized snapshot. This abstraction allows
// swapping storage backends (SQLite, flat file, etc.) without changing the
// store layer.
type Local interface {
	// Save overwrites the stored snapshot with the given serialized bytes.
	Save(ctx context.Context, data []byte) error

	// Load returns the stored snapshot bytes, or ErrNoSnapshot if none
	// exists yet.
	Load(ctx context.Context) ([]byte, error)

	// Close releases any resources held by the store.
	Close() error
}
