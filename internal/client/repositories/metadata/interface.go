// Package metadata is the local key/value store: raw byte values under
// string keys, persisted in SQLite. Typed access lives one layer up in the
// identity store.
package metadata

import (
	"context"
)

// Repository is a key/value store.
//
// Get returns (nil, nil) for a key that was never set, so callers can apply
// their own defaults.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
