//go:build !js && !(windows && (arm || 386)) && !(linux && (ppc64 || mips || mipsle || mips64))

package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tarantool/go-revstore/driver"
	"github.com/tarantool/go-revstore/driver/sqldb"
	"github.com/tarantool/go-revstore/driver/sqlite"
	"github.com/tarantool/go-revstore/internal/backendtest"
)

func datasource(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "state.db")
}

func TestSqliteDriver_Conformance(t *testing.T) {
	t.Parallel()

	backendtest.Run(t, func(t *testing.T) driver.Driver {
		t.Helper()

		drv, err := sqlite.New(context.Background(), datasource(t), sqlite.WithLogger(zaptest.NewLogger(t)))
		require.NoError(t, err)

		return drv
	})
}

func TestSqliteDriver_Conformance_PrivateCache(t *testing.T) {
	t.Parallel()

	backendtest.Run(t, func(t *testing.T) driver.Driver {
		t.Helper()

		drv, err := sqlite.New(context.Background(), datasource(t), sqlite.WithSharedCache(false))
		require.NoError(t, err)

		return drv
	})
}

func TestNew_ExistingPath(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := datasource(t)

	drv, err := sqlite.New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, drv.Close())

	_, err = sqlite.New(ctx, path)
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrExist)

	var ioErr *driver.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, path, ioErr.Path)
}

func TestNew_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "missing", "state.db"))

	var ioErr *driver.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNewWithDB_SchemaIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := datasource(t)

	drv, err := sqlite.New(ctx, path)
	require.NoError(t, err)

	rev, err := drv.Put(ctx, "/root/health", []byte("OK"))
	require.NoError(t, err)
	require.Equal(t, int64(1), rev)
	require.NoError(t, drv.Close())

	for range 2 {
		db, err := sql.Open("sqlite", path)
		require.NoError(t, err)

		reopened, err := sqlite.NewWithDB(ctx, db, sqlite.WithLogger(zaptest.NewLogger(t)))
		require.NoError(t, err)

		current, err := reopened.CurrentRevision(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), current)

		kvs, err := reopened.ListCurrent(ctx, "/root/health", 1, false)
		require.NoError(t, err)
		require.Len(t, kvs, 1)
		assert.Equal(t, []byte("OK"), kvs[0].Value)

		require.NoError(t, reopened.Close())
	}
}

func TestNewWithDB_InMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)

	// Every connection to ":memory:" is a distinct database.
	db.SetMaxOpenConns(1)

	drv, err := sqlite.NewWithDB(ctx, db, sqlite.WithStoreOptions(sqldb.WithTxRetries(1)))
	require.NoError(t, err)

	defer func() {
		assert.NoError(t, drv.Close())
	}()

	rev, err := drv.Put(ctx, "/k", []byte("v"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)

	count, err := drv.Count(ctx, "/k")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	assert.False(t, sqlite.IsRetryable(nil))
	assert.False(t, sqlite.IsRetryable(errors.New("no such table: revstore_log")))
	assert.True(t, sqlite.IsRetryable(errors.New("database is locked (5) (SQLITE_BUSY)")))
}

func TestIsRetryable_Constraints(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	drv, err := sqlite.New(ctx, datasource(t), sqlite.WithStoreOptions(sqldb.WithTxRetries(1)))
	require.NoError(t, err)

	defer func() {
		assert.NoError(t, drv.Close())
	}()

	_, err = drv.Put(ctx, "/k", []byte("v"))
	require.NoError(t, err)

	insert := "INSERT INTO " + sqldb.Table +
		" (id, name, created, deleted, create_revision, prev_revision) VALUES (%d, '/k', 0, 0, 1, %d)"

	// The revision is already taken: a concurrent writer won, try again.
	_, err = drv.DB().ExecContext(ctx, fmt.Sprintf(insert, 1, 7))
	require.Error(t, err)
	assert.True(t, sqlite.IsRetryable(err), err.Error())

	_, err = drv.DB().ExecContext(ctx, fmt.Sprintf(insert, 2, 7))
	require.NoError(t, err)

	// Same (name, prev_revision) pair: retrying cannot help.
	_, err = drv.DB().ExecContext(ctx, fmt.Sprintf(insert, 3, 7))
	require.Error(t, err)
	assert.False(t, sqlite.IsRetryable(err), err.Error())
}

func TestPut_EmptyValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	drv, err := sqlite.New(ctx, datasource(t))
	require.NoError(t, err)

	defer func() {
		assert.NoError(t, drv.Close())
	}()

	_, err = drv.Put(ctx, "/e", nil)
	require.NoError(t, err)

	kvs, err := drv.ListCurrent(ctx, "/e", 1, false)
	require.NoError(t, err)
	require.Len(t, kvs, 1)
	assert.NotNil(t, kvs[0].Value)
	assert.Empty(t, kvs[0].Value)

	rev, err := drv.Put(ctx, "/e", []byte("x"))
	require.NoError(t, err)

	var oldValueIsNull bool

	err = drv.DB().QueryRowContext(ctx,
		"SELECT old_value IS NULL FROM "+sqldb.Table+" WHERE id = ?", rev).Scan(&oldValueIsNull)
	require.NoError(t, err)
	assert.False(t, oldValueIsNull, "the previous empty payload is recorded")
}

func TestNew_PathWithURISeparators(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	dir := filepath.Join(t.TempDir(), "odd?name#1%")
	require.NoError(t, os.Mkdir(dir, 0o700))

	drv, err := sqlite.New(ctx, filepath.Join(dir, "state.db"))
	require.NoError(t, err)

	defer func() {
		assert.NoError(t, drv.Close())
	}()

	rev, err := drv.Put(ctx, "/k", []byte("v"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
		assert.True(t, strings.HasPrefix(entry.Name(), "state.db"), entry.Name())
	}

	assert.Contains(t, names, "state.db-wal", "sqlite opened the created file")
}

func TestDSN_EscapesPath(t *testing.T) {
	t.Parallel()

	dsn := sqlite.DSN("/var/lib/odd?name#1%/state.db")
	assert.True(t, strings.HasPrefix(dsn, "file:/var/lib/odd%3Fname%231%25/state.db?"), dsn)
	assert.Contains(t, dsn, "_txlock=immediate")
}
