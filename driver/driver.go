// Package driver defines the interface for storage engine implementations.
// It provides a common interface for the engines backing a revisioned log,
// like SQLite, PostgreSQL, etcd or the in-memory arena.
package driver

import (
	"context"

	"github.com/tarantool/go-revstore/kv"
)

// Driver is the interface that storage engines must implement.
// Every engine persists an append-only revision log and derives the current
// state of keys from it.
type Driver interface {
	// Size returns an approximate on-disk footprint of the store in bytes.
	Size(ctx context.Context) (uint64, error)

	// CurrentRevision returns the greatest revision in the log, 0 if it is empty.
	CurrentRevision(ctx context.Context) (kv.Revision, error)

	// Count returns the number of live keys selected by prefix.
	// A prefix ending with "/" selects every nested key, otherwise it is an exact key.
	Count(ctx context.Context, prefix string) (int64, error)

	// Put appends a create or update event for key and returns its revision.
	Put(ctx context.Context, key string, value []byte) (kv.Revision, error)

	// ListCurrent returns the current rows selected by prefix ordered by
	// ascending revision. A non-positive limit means unbounded.
	ListCurrent(ctx context.Context, prefix string, limit int64, includeDeleted bool) ([]kv.KeyValue, error)

	// Delete appends a tombstone for a live key and returns its revision.
	// Deleting an absent key appends nothing and returns the current revision.
	Delete(ctx context.Context, key string) (kv.Revision, error)

	// Close releases the engine handle.
	Close() error
}
