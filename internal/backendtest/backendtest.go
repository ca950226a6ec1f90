// Package backendtest is a conformance suite for storage drivers. Every engine
// that persists a revision log runs it from its own tests.
package backendtest

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/tarantool/go-revstore/driver"
	"github.com/tarantool/go-revstore/kv"
)

// Factory returns a driver backed by an empty store.
// The driver is closed by the suite.
type Factory func(t *testing.T) driver.Driver

const (
	concurrentWriters = 4
	writesPerWriter   = 5
)

// Run executes the conformance suite against drivers produced by factory.
func Run(t *testing.T, factory Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, d driver.Driver)
	}{
		{"EmptyStore", testEmptyStore},
		{"SoloKeyCRUD", testSoloKeyCRUD},
		{"UpdatePreservesCreateRevision", testUpdatePreservesCreateRevision},
		{"RevisionsAcrossKeys", testRevisionsAcrossKeys},
		{"DeleteIdempotent", testDeleteIdempotent},
		{"HierarchicalListing", testHierarchicalListing},
		{"PrefixDeleteDoesNotCascade", testPrefixDeleteDoesNotCascade},
		{"IncludeDeleted", testIncludeDeleted},
		{"RecreateAfterDelete", testRecreateAfterDelete},
		{"BinaryValues", testBinaryValues},
		{"Scenario", testScenario},
		{"ConcurrentPuts", testConcurrentPuts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := factory(t)
			t.Cleanup(func() {
				assert.NoError(t, d.Close())
			})

			tt.fn(t, d)
		})
	}
}

func mustPut(t *testing.T, d driver.Driver, key, value string) kv.Revision {
	t.Helper()

	rev, err := d.Put(context.Background(), key, []byte(value))
	require.NoError(t, err)

	return rev
}

func mustDelete(t *testing.T, d driver.Driver, key string) kv.Revision {
	t.Helper()

	rev, err := d.Delete(context.Background(), key)
	require.NoError(t, err)

	return rev
}

func mustCount(t *testing.T, d driver.Driver, prefix string) int64 {
	t.Helper()

	count, err := d.Count(context.Background(), prefix)
	require.NoError(t, err)

	return count
}

func mustRevision(t *testing.T, d driver.Driver) kv.Revision {
	t.Helper()

	rev, err := d.CurrentRevision(context.Background())
	require.NoError(t, err)

	return rev
}

func mustList(t *testing.T, d driver.Driver, prefix string, limit int64, includeDeleted bool) []kv.KeyValue {
	t.Helper()

	kvs, err := d.ListCurrent(context.Background(), prefix, limit, includeDeleted)
	require.NoError(t, err)

	return kvs
}

func get(t *testing.T, d driver.Driver, key string) (kv.KeyValue, bool) {
	t.Helper()

	kvs := mustList(t, d, key, 1, false)
	if len(kvs) == 0 {
		return kv.KeyValue{}, false //nolint:exhaustruct
	}

	return kvs[0], true
}

func testEmptyStore(t *testing.T, d driver.Driver) {
	_, err := d.Size(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), mustRevision(t, d))
	assert.Equal(t, int64(0), mustCount(t, d, "/"))
	assert.Empty(t, mustList(t, d, "/", -1, false))
	assert.Empty(t, mustList(t, d, "/", -1, true))
}

func testSoloKeyCRUD(t *testing.T, d driver.Driver) {
	const key = "/root/health"

	_, ok := get(t, d, key)
	require.False(t, ok)

	require.Equal(t, int64(1), mustPut(t, d, key, "OK"))
	assert.Equal(t, int64(1), mustCount(t, d, key))

	got, ok := get(t, d, key)
	require.True(t, ok)
	assert.Equal(t, key, got.Key)
	assert.Equal(t, []byte("OK"), got.Value)
	assert.Equal(t, int64(1), got.CreateRevision)
	assert.Equal(t, int64(1), got.ModRevision)

	require.Equal(t, int64(2), mustPut(t, d, key, "NOT OKAY"))
	assert.Equal(t, int64(1), mustCount(t, d, key))

	got, ok = get(t, d, key)
	require.True(t, ok)
	assert.Equal(t, []byte("NOT OKAY"), got.Value)
	assert.Equal(t, int64(1), got.CreateRevision)
	assert.Equal(t, int64(2), got.ModRevision)

	require.Equal(t, int64(3), mustDelete(t, d, key))

	_, ok = get(t, d, key)
	assert.False(t, ok)

	assert.Equal(t, int64(3), mustDelete(t, d, key))
	assert.Equal(t, int64(0), mustCount(t, d, key))

	size, err := d.Size(context.Background())
	require.NoError(t, err)
	assert.Positive(t, size)
}

func testUpdatePreservesCreateRevision(t *testing.T, d driver.Driver) {
	require.Equal(t, int64(1), mustPut(t, d, "/k", "OK"))
	require.Equal(t, int64(2), mustPut(t, d, "/k", "NO"))

	got, ok := get(t, d, "/k")
	require.True(t, ok)
	assert.Equal(t, int64(1), got.CreateRevision)
	assert.Equal(t, int64(2), got.ModRevision)
	assert.Equal(t, []byte("NO"), got.Value)
	assert.False(t, got.Lease.IsSome())
}

func testRevisionsAcrossKeys(t *testing.T, d driver.Driver) {
	var last kv.Revision

	for i := range 5 {
		rev := mustPut(t, d, fmt.Sprintf("/keys/%d", i%2), "v")
		assert.Greater(t, rev, last)

		last = rev
	}

	assert.Equal(t, last, mustRevision(t, d))

	second := mustPut(t, d, "/keys/second", "v")
	got, ok := get(t, d, "/keys/second")
	require.True(t, ok)
	assert.Equal(t, second, got.CreateRevision, "a new key gets the event's own revision")
}

func testDeleteIdempotent(t *testing.T, d driver.Driver) {
	assert.Equal(t, int64(0), mustDelete(t, d, "/absent"))
	assert.Equal(t, int64(0), mustRevision(t, d))

	mustPut(t, d, "/present", "v")
	rev := mustDelete(t, d, "/present")

	for range 3 {
		assert.Equal(t, rev, mustDelete(t, d, "/present"))
		assert.Equal(t, rev, mustDelete(t, d, "/absent"))
	}

	assert.Equal(t, rev, mustRevision(t, d))
}

func testHierarchicalListing(t *testing.T, d driver.Driver) {
	mustPut(t, d, "/root/health", "OK")
	mustPut(t, d, "/root/status", "OK")
	mustPut(t, d, "/rootless", "OK")
	mustPut(t, d, "/root", "OK")

	assert.Equal(t, int64(2), mustCount(t, d, "/root/"))

	kvs := mustList(t, d, "/root/", -1, false)
	require.Len(t, kvs, 2)
	assert.Equal(t, "/root/health", kvs[0].Key)
	assert.Equal(t, "/root/status", kvs[1].Key)
	assert.Less(t, kvs[0].ModRevision, kvs[1].ModRevision)

	kvs = mustList(t, d, "/root/", 1, false)
	require.Len(t, kvs, 1)
	assert.Equal(t, "/root/health", kvs[0].Key)

	before := mustRevision(t, d)
	mustPut(t, d, "/root/health", "OK")

	assert.Equal(t, int64(2), mustCount(t, d, "/root/"))
	assert.Greater(t, mustRevision(t, d), before)

	kvs = mustList(t, d, "/root/", 0, false)
	require.Len(t, kvs, 2)
	assert.Equal(t, "/root/status", kvs[0].Key, "updated key moves to the end")

	assert.Equal(t, int64(1), mustCount(t, d, "/root"))
}

func testPrefixDeleteDoesNotCascade(t *testing.T, d driver.Driver) {
	mustPut(t, d, "/root/health", "OK")
	rev := mustPut(t, d, "/root/status", "OK")

	assert.Equal(t, rev, mustDelete(t, d, "/root"))
	assert.Equal(t, rev, mustDelete(t, d, "/root/"))
	assert.Equal(t, rev, mustRevision(t, d))
	assert.Equal(t, int64(2), mustCount(t, d, "/root/"))
}

func testIncludeDeleted(t *testing.T, d driver.Driver) {
	mustPut(t, d, "/dir/a", "1")
	mustPut(t, d, "/dir/b", "2")
	tomb := mustDelete(t, d, "/dir/a")

	assert.Len(t, mustList(t, d, "/dir/", -1, false), 1)

	kvs := mustList(t, d, "/dir/", -1, true)
	require.Len(t, kvs, 2)
	assert.Equal(t, "/dir/b", kvs[0].Key)
	assert.Equal(t, "/dir/a", kvs[1].Key)
	assert.Equal(t, tomb, kvs[1].ModRevision)
	assert.True(t, kvs[1].Deleted())
	assert.Nil(t, kvs[1].Value)
}

func testRecreateAfterDelete(t *testing.T, d driver.Driver) {
	mustPut(t, d, "/k", "first")
	mustDelete(t, d, "/k")
	rev := mustPut(t, d, "/k", "second")

	require.Equal(t, int64(3), rev)

	got, ok := get(t, d, "/k")
	require.True(t, ok)
	assert.Equal(t, rev, got.CreateRevision)
	assert.Equal(t, []byte("second"), got.Value)
}

func testBinaryValues(t *testing.T, d driver.Driver) {
	value := []byte{0x00, 0xff, 0x10, 0x00}

	_, err := d.Put(context.Background(), "/bin", value)
	require.NoError(t, err)

	got, ok := get(t, d, "/bin")
	require.True(t, ok)
	assert.Equal(t, value, got.Value)

	_, err = d.Put(context.Background(), "/empty", []byte{})
	require.NoError(t, err)

	got, ok = get(t, d, "/empty")
	require.True(t, ok)
	assert.NotNil(t, got.Value, "a live key always has a payload")
	assert.Empty(t, got.Value)
	assert.False(t, got.Deleted())

	_, err = d.Put(context.Background(), "/nil", nil)
	require.NoError(t, err)

	got, ok = get(t, d, "/nil")
	require.True(t, ok)
	assert.NotNil(t, got.Value)
	assert.Empty(t, got.Value)
}

func testScenario(t *testing.T, d driver.Driver) {
	assert.Equal(t, int64(1), mustPut(t, d, "/root/health", "OK"))
	assert.Equal(t, int64(2), mustPut(t, d, "/root/status", "OK"))
	assert.Equal(t, int64(2), mustCount(t, d, "/root/"))
	assert.Equal(t, int64(3), mustPut(t, d, "/root/health", "OK"))
	assert.Equal(t, int64(4), mustPut(t, d, "/root/status", "OK"))
	assert.Equal(t, int64(2), mustCount(t, d, "/root/"))
	assert.Equal(t, int64(4), mustDelete(t, d, "/root"))
	assert.Equal(t, int64(5), mustDelete(t, d, "/root/health"))
	assert.Equal(t, int64(5), mustDelete(t, d, "/root/health"))
	assert.Equal(t, int64(1), mustCount(t, d, "/root/"))
	assert.Len(t, mustList(t, d, "/root/", -1, false), 1)
	assert.Equal(t, int64(6), mustDelete(t, d, "/root/status"))
	assert.Equal(t, int64(6), mustDelete(t, d, "/root/status"))
	assert.Equal(t, int64(0), mustCount(t, d, "/root/"))
	assert.Empty(t, mustList(t, d, "/root/", -1, false))
}

func testConcurrentPuts(t *testing.T, d driver.Driver) {
	var (
		group errgroup.Group
		revs  = make([][]kv.Revision, concurrentWriters)
	)

	for w := range concurrentWriters {
		group.Go(func() error {
			for i := range writesPerWriter {
				rev, err := d.Put(context.Background(), "/contended", []byte(fmt.Sprintf("%d-%d", w, i)))
				if err != nil {
					return err
				}

				revs[w] = append(revs[w], rev)
			}

			return nil
		})
	}

	require.NoError(t, group.Wait())

	all := make([]kv.Revision, 0, concurrentWriters*writesPerWriter)
	for _, writer := range revs {
		for i := 1; i < len(writer); i++ {
			assert.Greater(t, writer[i], writer[i-1], "revisions of one writer must increase")
		}

		all = append(all, writer...)
	}

	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

	for i, rev := range all {
		assert.Equal(t, int64(i+1), rev, "revisions must be unique and gapless")
	}

	got, ok := get(t, d, "/contended")
	require.True(t, ok)
	assert.Equal(t, int64(len(all)), got.ModRevision)
	assert.Equal(t, int64(1), got.CreateRevision)
	assert.Equal(t, int64(len(all)), mustRevision(t, d))
}
