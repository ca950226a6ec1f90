package sqldb_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-revstore/driver"
	"github.com/tarantool/go-revstore/driver/sqldb"
	"github.com/tarantool/go-revstore/driver/sqlite"
)

var errBusy = errors.New("database is locked (5) (SQLITE_BUSY)")

func newStore(t *testing.T, opts ...sqldb.Option) *sqldb.Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)

	db.SetMaxOpenConns(1)

	opts = append([]sqldb.Option{sqldb.WithTxRetryDelay(time.Microsecond)}, opts...)

	drv, err := sqlite.NewWithDB(context.Background(), db, sqlite.WithStoreOptions(opts...))
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, drv.Close())
	})

	return drv.Store
}

func TestNew_NoDialect(t *testing.T) {
	t.Parallel()

	_, err := sqldb.New(context.Background(), nil, nil)
	require.ErrorIs(t, err, sqldb.ErrNoDialect)
}

func TestExecTx_RetriesRetriableErrors(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	attempts := 0

	err := store.ExecTx(context.Background(), "test", func(_ context.Context, _ *sql.Tx) error {
		attempts++
		if attempts < 3 {
			return errBusy
		}

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestExecTx_StopsOnPermanentError(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	attempts := 0
	cause := errors.New("no such table")

	err := store.ExecTx(context.Background(), "test", func(_ context.Context, _ *sql.Tx) error {
		attempts++
		return cause
	})
	require.ErrorIs(t, err, cause)
	assert.Equal(t, 1, attempts)

	var backendErr *driver.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "test", backendErr.Op)
}

func TestExecTx_RetriesExceeded(t *testing.T) {
	t.Parallel()

	store := newStore(t, sqldb.WithTxRetries(2))
	attempts := 0

	err := store.ExecTx(context.Background(), "test", func(_ context.Context, _ *sql.Tx) error {
		attempts++
		return errBusy
	})
	require.ErrorIs(t, err, driver.ErrRetriesExceeded)
	require.ErrorIs(t, err, errBusy, "the last engine error is kept")
	assert.Equal(t, 2, attempts)
}

func TestExecTx_NoDelayAfterLastAttempt(t *testing.T) {
	t.Parallel()

	store := newStore(t,
		sqldb.WithTxRetries(1),
		sqldb.WithTxRetryDelay(time.Hour),
		sqldb.WithMaxRetryDelay(time.Hour),
	)

	start := time.Now()
	err := store.ExecTx(context.Background(), "test", func(_ context.Context, _ *sql.Tx) error {
		return errBusy
	})
	require.ErrorIs(t, err, driver.ErrRetriesExceeded)
	require.ErrorIs(t, err, errBusy)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestExecTx_RollsBackOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newStore(t)

	err := store.ExecTx(ctx, "test", func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO "+sqldb.Table+" (id, name, created, deleted, create_revision) VALUES (1, '/k', 1, 0, 1)")
		require.NoError(t, err)

		return errors.New("abandon")
	})
	require.Error(t, err)

	rev, err := store.CurrentRevision(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rev, "no partial row may be visible")
}

func TestExecTx_ContextCanceled(t *testing.T) {
	t.Parallel()

	store := newStore(t, sqldb.WithTxRetryDelay(time.Hour), sqldb.WithMaxRetryDelay(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())

	err := store.ExecTx(ctx, "test", func(_ context.Context, _ *sql.Tx) error {
		cancel()
		return errBusy
	})
	require.ErrorIs(t, err, context.Canceled)
}
