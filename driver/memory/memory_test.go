package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tarantool/go-revstore/driver"
	"github.com/tarantool/go-revstore/driver/memory"
	"github.com/tarantool/go-revstore/internal/backendtest"
)

func TestDriver_Conformance(t *testing.T) {
	t.Parallel()

	backendtest.Run(t, func(t *testing.T) driver.Driver {
		t.Helper()

		return memory.New(memory.WithLogger(zaptest.NewLogger(t)))
	})
}

func TestDriver_SizeGrowsWithLog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	drv := memory.New()

	size, err := drv.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), size)

	_, err = drv.Put(ctx, "/k", []byte("value"))
	require.NoError(t, err)

	afterPut, err := drv.Size(ctx)
	require.NoError(t, err)
	assert.Greater(t, afterPut, size)

	_, err = drv.Delete(ctx, "/k")
	require.NoError(t, err)

	afterDelete, err := drv.Size(ctx)
	require.NoError(t, err)
	assert.Greater(t, afterDelete, afterPut, "tombstones are appended, not reclaimed")
}

func TestDriver_PutCopiesValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	drv := memory.New()

	value := []byte("original")
	_, err := drv.Put(ctx, "/k", value)
	require.NoError(t, err)

	copy(value, "mutated!")

	kvs, err := drv.ListCurrent(ctx, "/k", 1, false)
	require.NoError(t, err)
	require.Len(t, kvs, 1)
	assert.Equal(t, []byte("original"), kvs[0].Value)
}

func TestDriver_NilValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	drv := memory.New()

	rev, err := drv.Put(ctx, "/empty", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)

	kvs, err := drv.ListCurrent(ctx, "/empty", 1, false)
	require.NoError(t, err)
	require.Len(t, kvs, 1)
	assert.Empty(t, kvs[0].Value)
	assert.False(t, kvs[0].Deleted())
}

func TestDriver_Close(t *testing.T) {
	t.Parallel()

	require.NoError(t, memory.New().Close())
}
