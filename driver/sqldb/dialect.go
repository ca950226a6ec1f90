package sqldb

import (
	"database/sql"
	"strconv"
	"strings"
	"sync"
)

// Dialect describes how the revision log is expressed in one SQL engine.
// Dialects are package-level values of the engine packages; the query
// templates of a dialect are rendered once, on first use.
type Dialect struct {
	// Name identifies the engine in logs.
	Name string
	// Schema is the list of idempotent DDL statements creating the log table
	// and its indexes.
	Schema []string
	// SizeQuery returns the approximate footprint of the store in bytes.
	SizeQuery string
	// NumberedPlaceholders switches "?" placeholders to "$1", "$2", ...
	NumberedPlaceholders bool
	// UnboundedLimit is bound to LIMIT when the caller asked for no limit.
	UnboundedLimit any
	// WriteTxOptions are used to begin mutation transactions.
	WriteTxOptions *sql.TxOptions
	// IsRetryable reports whether a failed transaction may be retried.
	IsRetryable func(err error) bool

	once    sync.Once
	queries queries
}

func (d *Dialect) rendered() *queries {
	d.once.Do(func() {
		d.queries = renderQueries(d.rebind, d.SizeQuery)
	})

	return &d.queries
}

// rebind rewrites "?" placeholders for engines with numbered placeholders.
func (d *Dialect) rebind(query string) string {
	if !d.NumberedPlaceholders {
		return query
	}

	var (
		out strings.Builder
		n   int
	)

	out.Grow(len(query) + 8)

	for _, r := range query {
		if r != '?' {
			out.WriteRune(r)
			continue
		}

		n++

		out.WriteByte('$')
		out.WriteString(strconv.Itoa(n))
	}

	return out.String()
}

func (d *Dialect) limitArg(limit int64) any {
	if limit > 0 {
		return limit
	}

	return d.UnboundedLimit
}

func (d *Dialect) retryable(err error) bool {
	if d.IsRetryable == nil {
		return false
	}

	return d.IsRetryable(err)
}
