package etcd_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/etcd/api/v3/etcdserverpb"
	"go.etcd.io/etcd/api/v3/mvccpb"
	etcdclient "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap/zaptest"

	"github.com/tarantool/go-revstore/driver"
	etcddriver "github.com/tarantool/go-revstore/driver/etcd"
)

var errInjected = errors.New("injected failure")

// fakeClient mimics the key-value part of an etcd member. A fresh cluster
// starts at revision 1, like a real one.
type fakeClient struct {
	mu       sync.Mutex
	revision int64
	kvs      map[string]*mvccpb.KeyValue
	closed   bool
	err      error
	dbSize   int64
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		mu:       sync.Mutex{},
		revision: 1,
		kvs:      make(map[string]*mvccpb.KeyValue),
		closed:   false,
		err:      nil,
		dbSize:   20480,
	}
}

func (c *fakeClient) header() *etcdserverpb.ResponseHeader {
	return &etcdserverpb.ResponseHeader{Revision: c.revision} //nolint:exhaustruct
}

func (c *fakeClient) Get(_ context.Context, key string, opts ...etcdclient.OpOption) (*etcdclient.GetResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return nil, c.err
	}

	op := etcdclient.OpGet(key, opts...)

	var matched []*mvccpb.KeyValue

	for name, entry := range c.kvs {
		if name == key || (op.IsOptsWithPrefix() && strings.HasPrefix(name, key)) {
			matched = append(matched, entry)
		}
	}

	// etcd sorts by key unless asked otherwise; the driver must not rely on
	// the server honoring its sort options.
	sort.Slice(matched, func(i, j int) bool {
		return string(matched[i].Key) < string(matched[j].Key)
	})

	resp := &etcdclient.GetResponse{ //nolint:exhaustruct
		Header: c.header(),
		Count:  int64(len(matched)),
	}
	if !op.IsCountOnly() {
		resp.Kvs = matched
	}

	return resp, nil
}

func (c *fakeClient) Put(_ context.Context, key, val string, _ ...etcdclient.OpOption) (*etcdclient.PutResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return nil, c.err
	}

	c.revision++

	entry, ok := c.kvs[key]
	if !ok {
		entry = &mvccpb.KeyValue{Key: []byte(key), CreateRevision: c.revision} //nolint:exhaustruct
		c.kvs[key] = entry
	}

	entry.ModRevision = c.revision
	entry.Version++
	entry.Value = []byte(val)

	return &etcdclient.PutResponse{Header: c.header()}, nil //nolint:exhaustruct
}

func (c *fakeClient) Delete(_ context.Context, key string, _ ...etcdclient.OpOption) (*etcdclient.DeleteResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return nil, c.err
	}

	resp := &etcdclient.DeleteResponse{} //nolint:exhaustruct

	if _, ok := c.kvs[key]; ok {
		c.revision++
		delete(c.kvs, key)

		resp.Deleted = 1
	}

	resp.Header = c.header()

	return resp, nil
}

func (c *fakeClient) Status(_ context.Context, _ string) (*etcdclient.StatusResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return nil, c.err
	}

	return &etcdclient.StatusResponse{Header: c.header(), DbSize: c.dbSize}, nil //nolint:exhaustruct
}

func (c *fakeClient) Endpoints() []string {
	return []string{"fake:2379"}
}

func (c *fakeClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true

	return nil
}

func (c *fakeClient) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.err = err
}

func newTestDriver(t *testing.T) (*etcddriver.Driver, *fakeClient) {
	t.Helper()

	client := newFakeClient()

	return etcddriver.New(client, etcddriver.WithLogger(zaptest.NewLogger(t))), client
}

func TestDriver_PutAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	drv, _ := newTestDriver(t)

	rev, err := drv.Put(ctx, "/k", []byte("OK"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), rev)

	rev, err = drv.Put(ctx, "/k", []byte("NO"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), rev)

	kvs, err := drv.ListCurrent(ctx, "/k", 1, false)
	require.NoError(t, err)
	require.Len(t, kvs, 1)
	assert.Equal(t, "/k", kvs[0].Key)
	assert.Equal(t, []byte("NO"), kvs[0].Value)
	assert.Equal(t, int64(2), kvs[0].CreateRevision)
	assert.Equal(t, int64(3), kvs[0].ModRevision)
	assert.False(t, kvs[0].Lease.IsSome())
}

func TestDriver_ListCurrent_OrdersByModRevision(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	drv, _ := newTestDriver(t)

	_, err := drv.Put(ctx, "/root/status", []byte("a"))
	require.NoError(t, err)
	_, err = drv.Put(ctx, "/root/health", []byte("b"))
	require.NoError(t, err)
	_, err = drv.Put(ctx, "/rootless", []byte("c"))
	require.NoError(t, err)

	kvs, err := drv.ListCurrent(ctx, "/root/", 0, false)
	require.NoError(t, err)
	require.Len(t, kvs, 2)
	assert.Equal(t, "/root/status", kvs[0].Key)
	assert.Equal(t, "/root/health", kvs[1].Key)

	kvs, err = drv.ListCurrent(ctx, "/root/", 1, false)
	require.NoError(t, err)
	require.Len(t, kvs, 1)
	assert.Equal(t, "/root/status", kvs[0].Key)

	kvs, err = drv.ListCurrent(ctx, "/root", 0, false)
	require.NoError(t, err)
	assert.Empty(t, kvs)
}

func TestDriver_Count(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	drv, _ := newTestDriver(t)

	_, err := drv.Put(ctx, "/root/health", []byte("a"))
	require.NoError(t, err)
	_, err = drv.Put(ctx, "/root/status", []byte("b"))
	require.NoError(t, err)

	count, err := drv.Count(ctx, "/root/")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = drv.Count(ctx, "/root/health")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = drv.Count(ctx, "/root")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestDriver_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	drv, _ := newTestDriver(t)

	_, err := drv.Put(ctx, "/k", []byte("v"))
	require.NoError(t, err)

	rev, err := drv.Delete(ctx, "/k")
	require.NoError(t, err)
	assert.Equal(t, int64(3), rev)

	rev, err = drv.Delete(ctx, "/k")
	require.NoError(t, err)
	assert.Equal(t, int64(3), rev, "deleting an absent key keeps the revision")

	current, err := drv.CurrentRevision(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), current)

	count, err := drv.Count(ctx, "/k")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestDriver_ListCurrent_IncludeDeletedUnsupported(t *testing.T) {
	t.Parallel()

	drv, _ := newTestDriver(t)

	_, err := drv.ListCurrent(context.Background(), "/", 0, true)
	require.ErrorIs(t, err, driver.ErrUnsupported)

	var backendErr *driver.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "list", backendErr.Op)
}

func TestDriver_Size(t *testing.T) {
	t.Parallel()

	drv, _ := newTestDriver(t)

	size, err := drv.Size(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(20480), size)
}

func TestDriver_ClientErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	drv, client := newTestDriver(t)
	client.fail(errInjected)

	tests := []struct {
		op  string
		run func() error
	}{
		{"put", func() error { _, err := drv.Put(ctx, "/k", nil); return err }},
		{"delete", func() error { _, err := drv.Delete(ctx, "/k"); return err }},
		{"list", func() error { _, err := drv.ListCurrent(ctx, "/", 0, false); return err }},
		{"count", func() error { _, err := drv.Count(ctx, "/"); return err }},
		{"size", func() error { _, err := drv.Size(ctx); return err }},
		{"current revision", func() error { _, err := drv.CurrentRevision(ctx); return err }},
	}

	for _, tt := range tests {
		err := tt.run()
		require.ErrorIs(t, err, errInjected, tt.op)

		var backendErr *driver.BackendError
		require.ErrorAs(t, err, &backendErr, tt.op)
		assert.Equal(t, tt.op, backendErr.Op)
	}
}

func TestDriver_Close(t *testing.T) {
	t.Parallel()

	drv, client := newTestDriver(t)

	require.NoError(t, drv.Close())
	assert.True(t, client.closed)
}
