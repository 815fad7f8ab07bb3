// Package backend turns configuration into a concrete blob store.
package backend

import (
	"fmt"
	"log/slog"

	"petledger/internal/config"
	"petledger/internal/storage"
	"petledger/internal/storage/bolt"
	"petledger/internal/storage/memory"
	"petledger/internal/storage/sqlite"
)

// Type represents the persistence backend selection.
type Type string

const (
	BoltBackend   Type = "bolt"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case BoltBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Result contains the blob store and an optional cleanup function.
type Result struct {
	Blobs   storage.BlobStore
	Cleanup func() error
}

// Create builds the blob store selected by cfg.DataBackend.
func Create(cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch Type(cfg.DataBackend) {
	case BoltBackend:
		store, err := bolt.Open(cfg.BoltDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize bolt backend: %w", err)
		}
		logger.Info("Initialized bolt backend", "db_path", cfg.BoltDBPath)
		return &Result{Blobs: store, Cleanup: store.Close}, nil

	case SQLiteBackend:
		store, err := sqlite.Open(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Blobs: store, Cleanup: store.Close}, nil

	case MemoryBackend:
		logger.Info("Initialized memory backend; state will not survive a restart")
		return &Result{Blobs: memory.New(), Cleanup: nil}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.DataBackend)
	}
}
