package revstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"
	"go.uber.org/zap/zaptest"

	"github.com/tarantool/go-revstore"
	"github.com/tarantool/go-revstore/driver"
	"github.com/tarantool/go-revstore/driver/memory"
	"github.com/tarantool/go-revstore/internal/mocks"
	"github.com/tarantool/go-revstore/kv"
)

var errList = errors.New("list failed")

func newBackend(t *testing.T) revstore.Backend {
	t.Helper()

	b := revstore.New(memory.New(), revstore.WithLogger(zaptest.NewLogger(t)))
	t.Cleanup(func() { assert.NoError(t, b.Close()) })

	return b
}

func TestBackend_Get(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := newBackend(t)

	_, err := b.Put(ctx, "/k", []byte("OK"))
	require.NoError(t, err)
	_, err = b.Put(ctx, "/k", []byte("NO"))
	require.NoError(t, err)

	item, found, err := b.Get(ctx, "/k", option.None[kv.Revision]())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "/k", item.Key)
	assert.Equal(t, []byte("NO"), item.Value)
	assert.Equal(t, kv.Revision(1), item.CreateRevision)
	assert.Equal(t, kv.Revision(2), item.ModRevision)
}

func TestBackend_Get_Absent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := newBackend(t)

	_, found, err := b.Get(ctx, "/missing", option.None[kv.Revision]())
	require.NoError(t, err)
	assert.False(t, found)

	_, err = b.Put(ctx, "/k", []byte("v"))
	require.NoError(t, err)
	_, err = b.Delete(ctx, "/k")
	require.NoError(t, err)

	_, found, err = b.Get(ctx, "/k", option.None[kv.Revision]())
	require.NoError(t, err)
	assert.False(t, found, "deleted keys are not visible")
}

func TestBackend_Get_HierarchicalKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := newBackend(t)

	_, err := b.Put(ctx, "/root/health", []byte("OK"))
	require.NoError(t, err)
	_, err = b.Put(ctx, "/root/status", []byte("active"))
	require.NoError(t, err)

	item, found, err := b.Get(ctx, "/root/", option.None[kv.Revision]())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "/root/health", item.Key, "the earliest nested key is returned")
}

func TestBackend_Get_AtRevision(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := newBackend(t)

	rev, err := b.Put(ctx, "/k", []byte("v"))
	require.NoError(t, err)

	_, found, err := b.Get(ctx, "/k", option.Some(rev))
	require.ErrorIs(t, err, revstore.ErrNotImplemented)
	assert.False(t, found)
}

func TestBackend_Get_DriverError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mock := mocks.NewDriverMock(t)
	mock.ListCurrentMock.Expect(ctx, "/k", int64(1), false).
		Return(nil, driver.NewBackendError("list", errList))

	b := revstore.New(mock)

	_, found, err := b.Get(ctx, "/k", option.None[kv.Revision]())
	require.ErrorIs(t, err, errList)
	assert.False(t, found)

	var backendErr *driver.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "list", backendErr.Op)
}

func TestBackend_Get_AtRevisionSkipsDriver(t *testing.T) {
	t.Parallel()

	mc := minimock.NewController(t)
	mock := mocks.NewDriverMock(mc)

	b := revstore.New(mock)

	_, _, err := b.Get(context.Background(), "/k", option.Some(kv.Revision(3)))
	require.ErrorIs(t, err, revstore.ErrNotImplemented)
	assert.Zero(t, mock.ListCurrentBeforeCounter())
}

func TestBackend_Get_LimitsToOneItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mock := mocks.NewDriverMock(t)
	mock.ListCurrentMock.Expect(ctx, "/root/", int64(1), false).Return([]kv.KeyValue{{
		Key:            "/root/health",
		Value:          []byte("OK"),
		CreateRevision: 4,
		ModRevision:    7,
	}}, nil)

	b := revstore.New(mock)

	item, found, err := b.Get(ctx, "/root/", option.None[kv.Revision]())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "/root/health", item.Key)
	assert.Equal(t, kv.Revision(7), item.ModRevision)
}

func TestBackend_PassesThroughDriverCalls(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	errClose := errors.New("close failed")

	mock := mocks.NewDriverMock(t)
	mock.PutMock.Expect(ctx, "/k", []byte("v")).Return(5, nil)
	mock.DeleteMock.Expect(ctx, "/k").Return(6, nil)
	mock.CountMock.Expect(ctx, "/").Return(2, nil)
	mock.CurrentRevisionMock.Expect(ctx).Return(6, nil)
	mock.SizeMock.Expect(ctx).Return(4096, nil)
	mock.CloseMock.Return(errClose)

	b := revstore.New(mock)

	rev, err := b.Put(ctx, "/k", []byte("v"))
	require.NoError(t, err)
	assert.Equal(t, kv.Revision(5), rev)

	rev, err = b.Delete(ctx, "/k")
	require.NoError(t, err)
	assert.Equal(t, kv.Revision(6), rev)

	count, err := b.Count(ctx, "/")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	current, err := b.CurrentRevision(ctx)
	require.NoError(t, err)
	assert.Equal(t, kv.Revision(6), current)

	size, err := b.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(4096), size)

	require.ErrorIs(t, b.Close(), errClose)
}

func TestBackend_DelegatesToDriver(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := newBackend(t)

	rev, err := b.Put(ctx, "/root/health", []byte("OK"))
	require.NoError(t, err)
	assert.Equal(t, kv.Revision(1), rev)

	current, err := b.CurrentRevision(ctx)
	require.NoError(t, err)
	assert.Equal(t, rev, current)

	count, err := b.Count(ctx, "/root/")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	size, err := b.Size(ctx)
	require.NoError(t, err)
	assert.Positive(t, size)
}
