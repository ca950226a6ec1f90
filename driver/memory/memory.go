// Package memory provides an in-memory implementation of the storage driver
// interface. The revision log is kept in an arena indexed by revision, and the
// current state of keys is derived from it on every read.
package memory

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/tarantool/go-revstore/driver"
	"github.com/tarantool/go-revstore/internal/options"
	"github.com/tarantool/go-revstore/kv"
	"github.com/tarantool/go-revstore/revlog"
)

// rowOverhead approximates the fixed per-row footprint reported by Size.
const rowOverhead = 64

type memoryOptions struct {
	logger *zap.Logger
}

// Option is a function that configures the memory driver.
type Option func(*memoryOptions)

// WithLogger sets the logger used by the driver.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *memoryOptions) {
		opts.logger = logger
	}
}

// Driver is a thread-safe in-memory revision log.
type Driver struct {
	log    []revlog.Row
	mu     sync.RWMutex
	logger *zap.Logger
}

var (
	_ driver.Driver = &Driver{} //nolint:exhaustruct
)

// New creates an empty in-memory driver.
func New(opts ...Option) *Driver {
	cfg := options.Apply(memoryOptions{logger: zap.NewNop()}, opts)

	return &Driver{
		log:    nil,
		mu:     sync.RWMutex{},
		logger: cfg.logger,
	}
}

// Size returns the approximate number of bytes held by the log.
func (d *Driver) Size(_ context.Context) (uint64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var size uint64
	for _, row := range d.log {
		size += uint64(rowOverhead + len(row.Name) + len(row.Value) + len(row.OldValue))
	}

	return size, nil
}

// CurrentRevision returns the revision of the last appended row.
func (d *Driver) CurrentRevision(_ context.Context) (kv.Revision, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.currentRevision(), nil
}

// Count returns the number of live keys selected by prefix.
func (d *Driver) Count(_ context.Context, prefix string) (int64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return int64(len(revlog.Visible(d.log, prefix, 0, false))), nil
}

// ListCurrent returns the current rows selected by prefix.
func (d *Driver) ListCurrent(_ context.Context, prefix string, limit int64, includeDeleted bool) ([]kv.KeyValue, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return revlog.KeyValues(revlog.Visible(d.log, prefix, limit, includeDeleted)), nil
}

// Put appends a create or update event for key.
func (d *Driver) Put(_ context.Context, key string, value []byte) (kv.Revision, error) {
	// A single writer lock makes the read-then-append sequence atomic.
	d.mu.Lock()
	defer d.mu.Unlock()

	next := d.currentRevision() + 1

	var row revlog.Row
	if cur, ok := d.current(key); ok {
		row = revlog.NewUpdate(next, cur, clone(value))
	} else {
		row = revlog.NewCreate(next, key, clone(value))
	}

	d.append(row)

	return row.ID, nil
}

// Delete appends a tombstone for key if it is live.
func (d *Driver) Delete(_ context.Context, key string) (kv.Revision, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	cur, ok := d.current(key)
	if !ok {
		return d.currentRevision(), nil
	}

	row := revlog.NewTombstone(d.currentRevision()+1, cur)
	d.append(row)

	return row.ID, nil
}

// Close is a no-op.
func (d *Driver) Close() error {
	return nil
}

func (d *Driver) currentRevision() kv.Revision {
	if len(d.log) == 0 {
		return 0
	}

	return d.log[len(d.log)-1].ID
}

func (d *Driver) current(key string) (revlog.Row, bool) {
	return revlog.Current(d.log, key)
}

func (d *Driver) append(row revlog.Row) {
	d.log = append(d.log, row)

	d.logger.Debug("appended log row",
		zap.String("key", row.Name),
		zap.Int64("revision", row.ID),
		zap.Stringer("kind", row.Kind()),
	)
}

func clone(value []byte) []byte {
	if value == nil {
		return []byte{}
	}

	out := make([]byte, len(value))
	copy(out, value)

	return out
}
