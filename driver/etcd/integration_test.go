// Integration tests for the etcd driver. They require a running etcd cluster
// whose endpoints are listed, comma separated, in REVSTORE_ETCD_ENDPOINTS.
// Every test works under its own key namespace, the cluster is never wiped.
package etcd_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	etcdclient "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap/zaptest"

	etcddriver "github.com/tarantool/go-revstore/driver/etcd"
)

const (
	endpointsEnv    = "REVSTORE_ETCD_ENDPOINTS"
	testDialTimeout = 5 * time.Second
)

// createTestDriver connects to the cluster named by the environment.
// The test is skipped when no cluster is configured.
func createTestDriver(t *testing.T) *etcddriver.Driver {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	endpoints := os.Getenv(endpointsEnv)
	if endpoints == "" {
		t.Skipf("%s is not set", endpointsEnv)
	}

	client, err := etcdclient.New(etcdclient.Config{ //nolint:exhaustruct
		Endpoints:   strings.Split(endpoints, ","),
		DialTimeout: testDialTimeout,
	})
	require.NoError(t, err, "Failed to create etcd client")

	drv := etcddriver.New(client, etcddriver.WithLogger(zaptest.NewLogger(t)))
	t.Cleanup(func() { _ = drv.Close() })

	return drv
}

func namespace(t *testing.T) string {
	t.Helper()

	return "/revstore-test/" + t.Name() + "/" + time.Now().Format("150405.000000000") + "/"
}

func TestIntegration_RevisionsAdvance(t *testing.T) {
	t.Parallel()

	drv := createTestDriver(t)
	ctx := context.Background()
	ns := namespace(t)

	start, err := drv.CurrentRevision(ctx)
	require.NoError(t, err)

	created, err := drv.Put(ctx, ns+"k", []byte("OK"))
	require.NoError(t, err)
	assert.Greater(t, created, start)

	updated, err := drv.Put(ctx, ns+"k", []byte("NO"))
	require.NoError(t, err)
	assert.Greater(t, updated, created)

	kvs, err := drv.ListCurrent(ctx, ns+"k", 1, false)
	require.NoError(t, err)
	require.Len(t, kvs, 1)
	assert.Equal(t, created, kvs[0].CreateRevision)
	assert.Equal(t, updated, kvs[0].ModRevision)
	assert.Equal(t, []byte("NO"), kvs[0].Value)

	deleted, err := drv.Delete(ctx, ns+"k")
	require.NoError(t, err)
	assert.Greater(t, deleted, updated)

	count, err := drv.Count(ctx, ns+"k")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestIntegration_HierarchicalListing(t *testing.T) {
	t.Parallel()

	drv := createTestDriver(t)
	ctx := context.Background()
	ns := namespace(t)

	_, err := drv.Put(ctx, ns+"root/health", []byte("OK"))
	require.NoError(t, err)
	_, err = drv.Put(ctx, ns+"root/status", []byte("active"))
	require.NoError(t, err)
	_, err = drv.Put(ctx, ns+"rootless", []byte("x"))
	require.NoError(t, err)

	count, err := drv.Count(ctx, ns+"root/")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	kvs, err := drv.ListCurrent(ctx, ns+"root/", 1, false)
	require.NoError(t, err)
	require.Len(t, kvs, 1)
	assert.Equal(t, ns+"root/health", kvs[0].Key)

	size, err := drv.Size(ctx)
	require.NoError(t, err)
	assert.Positive(t, size)
}
