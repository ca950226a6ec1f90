package sqldb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-revstore/driver/sqldb"
)

func TestDialect_Rebind(t *testing.T) {
	t.Parallel()

	positional := &sqldb.Dialect{NumberedPlaceholders: false} //nolint:exhaustruct
	numbered := &sqldb.Dialect{NumberedPlaceholders: true}    //nolint:exhaustruct

	query := "SELECT * FROM t WHERE a = ? AND b < ? LIMIT ?"

	assert.Equal(t, query, positional.Rebind(query))
	assert.Equal(t, "SELECT * FROM t WHERE a = $1 AND b < $2 LIMIT $3", numbered.Rebind(query))
}

func TestDialect_LimitArg(t *testing.T) {
	t.Parallel()

	dialect := &sqldb.Dialect{UnboundedLimit: int64(-1)} //nolint:exhaustruct

	assert.Equal(t, int64(5), dialect.LimitArg(5))
	assert.Equal(t, int64(-1), dialect.LimitArg(0))
	assert.Equal(t, int64(-1), dialect.LimitArg(-10))
}

func TestDialect_QueriesRenderedOnce(t *testing.T) {
	t.Parallel()

	dialect := &sqldb.Dialect{NumberedPlaceholders: true} //nolint:exhaustruct

	first := dialect.ListPrefixQuery()
	assert.Contains(t, first, "mkv.name >= $1 AND mkv.name < $2")
	assert.Contains(t, first, "(NOT kv.deleted OR $3)")
	assert.Contains(t, first, "LIMIT $4")
	assert.Contains(t, first, "GROUP BY mkv.name")

	dialect.NumberedPlaceholders = false
	assert.Equal(t, first, dialect.ListPrefixQuery())
}

func TestRandRetryDelay(t *testing.T) {
	t.Parallel()

	const (
		base     = 10 * time.Millisecond
		maxDelay = 100 * time.Millisecond
	)

	for range 100 {
		delay := sqldb.RandRetryDelay(base, maxDelay, 0)
		assert.GreaterOrEqual(t, delay, base/2)
		assert.Less(t, delay, base*3/2)
	}

	assert.Equal(t, maxDelay, sqldb.RandRetryDelay(base, maxDelay, 10))
	assert.Equal(t, time.Duration(0), sqldb.RandRetryDelay(0, maxDelay, 3))
}
