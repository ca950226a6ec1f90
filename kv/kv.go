// Package kv provides the key-value view returned by revisioned storage reads.
// A KeyValue is a projection of the current log row of a key, it is never stored
// on its own.
package kv

import (
	"github.com/tarantool/go-option"
)

// Revision is a global, strictly increasing sequence number assigned to every
// appended log row. Zero means "no revision" (empty store).
type Revision = int64

// KeyValue represents the current state of a key with its revision metadata.
type KeyValue struct {
	// Key is the key name.
	Key string
	// CreateRevision is the revision of the event that created the key.
	CreateRevision Revision
	// ModRevision is the revision of the last modification to this key.
	ModRevision Revision
	// Value is the current payload, nil for a tombstone.
	Value []byte
	// Lease is reserved for expiry semantics and is never enforced.
	Lease option.Generic[int64]
}

// Deleted reports whether the KeyValue is a tombstone. Tombstones are only
// returned by reads that explicitly include deleted rows.
func (k KeyValue) Deleted() bool {
	return k.CreateRevision == 0
}
