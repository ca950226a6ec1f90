// Package revlog describes the append-only revision log: the row layout every
// engine persists and the visibility rules that derive the current state of
// keys from it.
package revlog

import (
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-revstore/kv"
)

// Row is a single immutable entry of the revision log.
type Row struct {
	// ID is assigned on append and doubles as the revision of the event.
	ID kv.Revision
	// Name is the key the row concerns.
	Name string
	// Created is set on the first row of a key.
	Created bool
	// Deleted is set on tombstone rows.
	Deleted bool
	// CreateRevision is the ID of the row that created the key, 0 for tombstones.
	CreateRevision kv.Revision
	// PrevRevision is reserved for compaction chaining and never populated.
	PrevRevision option.Generic[kv.Revision]
	// Lease is reserved for expiry semantics and never enforced.
	Lease option.Generic[int64]
	// Value is the payload, nil for tombstones.
	Value []byte
	// OldValue is the payload superseded by this row.
	OldValue []byte
}

// Kind classifies the row as a create, update or delete event.
func (r Row) Kind() Kind {
	switch {
	case r.Deleted:
		return KindDelete
	case r.Created:
		return KindCreate
	default:
		return KindUpdate
	}
}

// KeyValue projects the row onto the caller-facing view.
func (r Row) KeyValue() kv.KeyValue {
	return kv.KeyValue{
		Key:            r.Name,
		CreateRevision: r.CreateRevision,
		ModRevision:    r.ID,
		Value:          r.Value,
		Lease:          r.Lease,
	}
}

// NewCreate returns the row that creates key at revision rev.
func NewCreate(rev kv.Revision, key string, value []byte) Row {
	return Row{
		ID:             rev,
		Name:           key,
		Created:        true,
		Deleted:        false,
		CreateRevision: rev,
		PrevRevision:   option.None[kv.Revision](),
		Lease:          option.None[int64](),
		Value:          value,
		OldValue:       nil,
	}
}

// NewUpdate returns the row that replaces the value of the live row cur.
func NewUpdate(rev kv.Revision, cur Row, value []byte) Row {
	return Row{
		ID:             rev,
		Name:           cur.Name,
		Created:        false,
		Deleted:        false,
		CreateRevision: cur.CreateRevision,
		PrevRevision:   option.None[kv.Revision](),
		Lease:          option.None[int64](),
		Value:          value,
		OldValue:       cur.Value,
	}
}

// NewTombstone returns the row that deletes the live row cur.
func NewTombstone(rev kv.Revision, cur Row) Row {
	return Row{
		ID:             rev,
		Name:           cur.Name,
		Created:        false,
		Deleted:        true,
		CreateRevision: 0,
		PrevRevision:   option.None[kv.Revision](),
		Lease:          option.None[int64](),
		Value:          nil,
		OldValue:       cur.Value,
	}
}
