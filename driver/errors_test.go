package driver_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-revstore/driver"
)

func TestNewBackendError(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, driver.NewBackendError("put", nil))
	})

	t.Run("wraps cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("disk I/O error")
		err := driver.NewBackendError("put", cause)

		require.Error(t, err)
		require.ErrorIs(t, err, cause)
		assert.Equal(t, "backend error: put: disk I/O error", err.Error())

		var backendErr *driver.BackendError
		require.ErrorAs(t, err, &backendErr)
		assert.Equal(t, "put", backendErr.Op)
	})

	t.Run("keeps innermost operation", func(t *testing.T) {
		t.Parallel()

		inner := driver.NewBackendError("current revision", errors.New("boom"))
		err := driver.NewBackendError("put", inner)

		var backendErr *driver.BackendError
		require.ErrorAs(t, err, &backendErr)
		assert.Equal(t, "current revision", backendErr.Op)
	})
}

func TestNewIOError(t *testing.T) {
	t.Parallel()

	require.NoError(t, driver.NewIOError("/tmp/state.db", nil))

	err := driver.NewIOError("/tmp/state.db", fs.ErrExist)
	require.ErrorIs(t, err, fs.ErrExist)
	assert.Contains(t, err.Error(), "/tmp/state.db")

	var ioErr *driver.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "/tmp/state.db", ioErr.Path)
}
