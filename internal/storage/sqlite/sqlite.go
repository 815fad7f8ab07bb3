// Package sqlite persists the ledger blob in a single-row SQLite table.
// An alternative to the default bolt backend for setups that want the data
// file inspectable with standard SQLite tooling.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"petledger/internal/storage"
)

type Store struct {
	db *sql.DB
}

// Open opens the database at dbPath, creating the file and running schema
// migrations as needed.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite database: %v", storage.ErrUnavailable, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping database: %v", storage.ErrUnavailable, err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT blob FROM ledger_state WHERE id = 1`).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load state: %v", storage.ErrUnavailable, err)
	}
	return blob, nil
}

func (s *Store) Save(ctx context.Context, blob []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ledger_state (id, blob, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		blob, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: save state: %v", storage.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
