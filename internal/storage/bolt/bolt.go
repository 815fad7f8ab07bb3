// Package bolt persists the ledger blob in a bbolt file: one bucket, one
// key. This is the default backend, the closest thing a local process has
// to the browser's key-value storage.
package bolt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"

	"petledger/internal/storage"
)

var (
	bucketName = []byte("ledger")
	stateKey   = []byte("state")
)

type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the bbolt file at path and ensures the
// ledger bucket exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: open bolt db: %v", storage.ErrUnavailable, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create bucket: %v", storage.ErrUnavailable, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Load(_ context.Context) ([]byte, error) {
	var blob []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketName).Get(stateKey)
		if v != nil {
			blob = make([]byte, len(v))
			copy(blob, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: load state: %v", storage.ErrUnavailable, err)
	}
	return blob, nil
}

func (s *Store) Save(_ context.Context, blob []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(stateKey, blob)
	})
	if err != nil {
		return fmt.Errorf("%w: save state: %v", storage.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
