package store

import (
	"context"
	"errors"
)

// ErrUnavailable wraps any backing-storage failure. Callers treat it as a
// recoverable condition and keep serving from memory.
var ErrUnavailable = errors.New("storage unavailable")

// Snapshot is a durable key/value namespace persisted as a whole document.
// Load of a namespace that was never saved returns an empty map, not an
// error. Save replaces the previous document.
type Snapshot[V any] interface {
	Load(ctx context.Context) (map[string]V, error)
	Save(ctx context.Context, data map[string]V) error
}
