// Package etcd provides an etcd implementation of the storage driver interface.
// etcd keeps its own multi-version log, so revisions, create revisions and
// the "current row per key" view come straight from the cluster.
//
// Differences from the SQL engines: revisions are those of the etcd cluster
// (a fresh cluster is already at revision 1), and tombstones are not
// readable, so listing with includeDeleted fails with driver.ErrUnsupported.
package etcd

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/tarantool/go-option"
	etcd "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap"

	"github.com/tarantool/go-revstore/driver"
	"github.com/tarantool/go-revstore/internal/options"
	"github.com/tarantool/go-revstore/kv"
	"github.com/tarantool/go-revstore/revlog"
)

// Client defines the minimal interface needed for etcd operations.
// *etcd.Client implements it; tests use an in-process fake.
type Client interface {
	// Get retrieves keys (using etcd's signature).
	Get(ctx context.Context, key string, opts ...etcd.OpOption) (*etcd.GetResponse, error)
	// Put puts a key-value pair (using etcd's signature).
	Put(ctx context.Context, key, val string, opts ...etcd.OpOption) (*etcd.PutResponse, error)
	// Delete deletes a key (using etcd's signature).
	Delete(ctx context.Context, key string, opts ...etcd.OpOption) (*etcd.DeleteResponse, error)
	// Status returns the status of the member behind endpoint.
	Status(ctx context.Context, endpoint string) (*etcd.StatusResponse, error)
	// Endpoints lists the endpoints the client is connected to.
	Endpoints() []string
	// Close closes the client.
	Close() error
}

var (
	_ driver.Driver = &Driver{} //nolint:exhaustruct
	_ Client        = (*etcd.Client)(nil)

	errNoEndpoints = errors.New("client has no endpoints")
)

type etcdOptions struct {
	logger *zap.Logger
}

// Option is a function that configures the etcd driver.
type Option func(*etcdOptions)

// WithLogger sets the logger used by the driver.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *etcdOptions) {
		opts.logger = logger
	}
}

// Driver is an etcd implementation of the storage driver interface.
type Driver struct {
	client Client
	logger *zap.Logger
}

// New creates a new etcd driver using an existing client.
// The client should be properly configured and connected to an etcd cluster.
// The driver takes ownership of the client and closes it on Close.
func New(client Client, opts ...Option) *Driver {
	cfg := options.Apply(etcdOptions{logger: zap.NewNop()}, opts)

	return &Driver{
		client: client,
		logger: cfg.logger,
	}
}

// Size returns the database size reported by the first endpoint.
func (d *Driver) Size(ctx context.Context) (uint64, error) {
	endpoints := d.client.Endpoints()
	if len(endpoints) == 0 {
		return 0, driver.NewBackendError("size", errNoEndpoints)
	}

	resp, err := d.client.Status(ctx, endpoints[0])
	if err != nil {
		return 0, driver.NewBackendError("size", err)
	}

	if resp.DbSize < 0 {
		return 0, nil
	}

	return uint64(resp.DbSize), nil
}

// CurrentRevision returns the revision of the cluster.
func (d *Driver) CurrentRevision(ctx context.Context) (kv.Revision, error) {
	resp, err := d.client.Get(ctx, string(revlog.Separator), etcd.WithCountOnly())
	if err != nil {
		return 0, driver.NewBackendError("current revision", err)
	}

	return resp.Header.GetRevision(), nil
}

// Count returns the number of live keys selected by prefix.
func (d *Driver) Count(ctx context.Context, prefix string) (int64, error) {
	resp, err := d.client.Get(ctx, prefix, append(scopeOptions(prefix), etcd.WithCountOnly())...)
	if err != nil {
		return 0, driver.NewBackendError("count", err)
	}

	return resp.Count, nil
}

// ListCurrent returns the live keys selected by prefix ordered by ascending
// modification revision.
func (d *Driver) ListCurrent(ctx context.Context, prefix string, limit int64, includeDeleted bool) ([]kv.KeyValue, error) {
	if includeDeleted {
		return nil, driver.NewBackendError("list", fmt.Errorf("%w: listing tombstones", driver.ErrUnsupported))
	}

	opts := append(scopeOptions(prefix), etcd.WithSort(etcd.SortByModRevision, etcd.SortAscend))
	if limit > 0 {
		opts = append(opts, etcd.WithLimit(limit))
	}

	resp, err := d.client.Get(ctx, prefix, opts...)
	if err != nil {
		return nil, driver.NewBackendError("list", err)
	}

	kvs := make([]kv.KeyValue, 0, len(resp.Kvs))
	for _, etcdKv := range resp.Kvs {
		lease := option.None[int64]()
		if etcdKv.Lease != 0 {
			lease = option.Some(etcdKv.Lease)
		}

		kvs = append(kvs, kv.KeyValue{
			Key:            string(etcdKv.Key),
			CreateRevision: etcdKv.CreateRevision,
			ModRevision:    etcdKv.ModRevision,
			Value:          etcdKv.Value,
			Lease:          lease,
		})
	}

	// The server already sorts and limits; this keeps the contract for
	// clients that do not.
	sort.SliceStable(kvs, func(i, j int) bool {
		return kvs[i].ModRevision < kvs[j].ModRevision
	})

	if limit > 0 && int64(len(kvs)) > limit {
		kvs = kvs[:limit]
	}

	return kvs, nil
}

// Put writes key and returns the revision of the write.
func (d *Driver) Put(ctx context.Context, key string, value []byte) (kv.Revision, error) {
	resp, err := d.client.Put(ctx, key, string(value))
	if err != nil {
		return 0, driver.NewBackendError("put", err)
	}

	rev := resp.Header.GetRevision()

	d.logger.Debug("put key", zap.String("key", key), zap.Int64("revision", rev))

	return rev, nil
}

// Delete removes exactly key. Deleting an absent key does not advance the
// cluster revision, so the current revision is returned.
func (d *Driver) Delete(ctx context.Context, key string) (kv.Revision, error) {
	resp, err := d.client.Delete(ctx, key)
	if err != nil {
		return 0, driver.NewBackendError("delete", err)
	}

	rev := resp.Header.GetRevision()

	d.logger.Debug("delete key",
		zap.String("key", key),
		zap.Int64("revision", rev),
		zap.Int64("deleted", resp.Deleted),
	)

	return rev, nil
}

// Close closes the client.
func (d *Driver) Close() error {
	err := d.client.Close()
	if err != nil {
		return fmt.Errorf("failed to close: %w", err)
	}

	return nil
}

// scopeOptions turns a hierarchical prefix into an etcd prefix range.
func scopeOptions(prefix string) []etcd.OpOption {
	if revlog.IsHierarchical(prefix) {
		return []etcd.OpOption{etcd.WithPrefix()}
	}

	return nil
}
