// Package memory provides an in-process BlobStore for tests and ephemeral
// runs. Nothing survives the process.
package memory

import (
	"context"
	"fmt"
	"sync"

	"petledger/internal/storage"
)

type Store struct {
	mu   sync.Mutex
	blob []byte
	// failSaves makes every Save fail, for exercising degraded-persistence
	// paths in tests.
	failSaves bool
}

func New() *Store {
	return &Store{}
}

func (s *Store) Load(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blob == nil {
		return nil, nil
	}
	out := make([]byte, len(s.blob))
	copy(out, s.blob)
	return out, nil
}

func (s *Store) Save(_ context.Context, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSaves {
		return fmt.Errorf("%w: memory store configured to fail", storage.ErrUnavailable)
	}
	s.blob = make([]byte, len(blob))
	copy(s.blob, blob)
	return nil
}

// FailSaves toggles save failures.
func (s *Store) FailSaves(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSaves = fail
}
