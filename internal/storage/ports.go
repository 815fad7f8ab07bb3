// Package storage defines the persistence port for the ledger: a key-value
// store holding the whole serialized ledger as one blob.
package storage

import (
	"context"
	"errors"
)

// ErrUnavailable reports that the underlying store could not be reached or
// written. Backends wrap their failures with it so callers can classify
// persistence trouble without knowing the backend.
var ErrUnavailable = errors.New("storage unavailable")

// BlobStore persists the serialized ledger. Load returns (nil, nil) when no
// blob has ever been saved; that is a normal first-run condition, not an
// error. Save replaces the previous blob atomically.
type BlobStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
}
