//go:build !js && !(windows && (arm || 386)) && !(linux && (ppc64 || mips || mipsle || mips64))

// Package sqlite provides a SQLite implementation of the storage driver
// interface. The store is opened in WAL journaling mode with a shared cache,
// and every transaction takes the write lock when it begins, so writers are
// serialized by the engine.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/tarantool/go-revstore/driver"
	"github.com/tarantool/go-revstore/driver/sqldb"
	"github.com/tarantool/go-revstore/internal/options"
)

const (
	// sqliteOptionPrefix is the DSN parameter sqlite uses to set pragmas.
	sqliteOptionPrefix = "_pragma"

	// sqliteTxLockImmediate makes write transactions take the lock at BEGIN.
	sqliteTxLockImmediate = "_txlock=immediate"

	defaultMaxConns    = 25
	defaultBusyTimeout = 5 * time.Second

	fileMode = 0o600
)

var (
	// Dialect is the SQLite rendition of the revision log.
	Dialect = &sqldb.Dialect{ //nolint:gochecknoglobals,exhaustruct
		Name: "sqlite",
		Schema: []string{
			`CREATE TABLE IF NOT EXISTS ` + sqldb.Table + ` (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				created INTEGER NOT NULL,
				deleted INTEGER NOT NULL,
				create_revision INTEGER NOT NULL,
				prev_revision INTEGER,
				lease INTEGER,
				value BLOB,
				old_value BLOB
			)`,
			`CREATE INDEX IF NOT EXISTS revstore_log_name_index ON ` + sqldb.Table + ` (name)`,
			`CREATE INDEX IF NOT EXISTS revstore_log_name_id_index ON ` + sqldb.Table + ` (name, id)`,
			`CREATE INDEX IF NOT EXISTS revstore_log_id_deleted_index ON ` + sqldb.Table + ` (id, deleted)`,
			`CREATE INDEX IF NOT EXISTS revstore_log_prev_revision_index ON ` + sqldb.Table + ` (prev_revision)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS revstore_log_name_prev_revision_uindex ON ` +
				sqldb.Table + ` (name, prev_revision)`,
		},
		SizeQuery:            "SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()",
		NumberedPlaceholders: false,
		UnboundedLimit:       int64(-1),
		WriteTxOptions:       nil,
		IsRetryable:          IsRetryable,
	}

	_ driver.Driver = &Driver{} //nolint:exhaustruct
)

type sqliteOptions struct {
	logger       *zap.Logger
	store        []sqldb.Option
	busyTimeout  time.Duration
	sharedCache  bool
	maxOpenConns int
}

func defaultOptions() sqliteOptions {
	return sqliteOptions{
		logger:       zap.NewNop(),
		store:        nil,
		busyTimeout:  defaultBusyTimeout,
		sharedCache:  true,
		maxOpenConns: defaultMaxConns,
	}
}

// Option is a function that configures the SQLite driver.
type Option func(*sqliteOptions)

// WithLogger sets the logger used by the driver.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *sqliteOptions) {
		opts.logger = logger
	}
}

// WithStoreOptions passes options to the underlying sqldb.Store.
func WithStoreOptions(storeOpts ...sqldb.Option) Option {
	return func(opts *sqliteOptions) {
		opts.store = append(opts.store, storeOpts...)
	}
}

// WithBusyTimeout sets how long a connection waits for the write lock.
func WithBusyTimeout(timeout time.Duration) Option {
	return func(opts *sqliteOptions) {
		opts.busyTimeout = timeout
	}
}

// WithSharedCache toggles the shared cache mode of connections.
func WithSharedCache(enabled bool) Option {
	return func(opts *sqliteOptions) {
		opts.sharedCache = enabled
	}
}

// WithMaxOpenConns sets the size of the connection pool.
func WithMaxOpenConns(n int) Option {
	return func(opts *sqliteOptions) {
		opts.maxOpenConns = n
	}
}

// Driver is a SQLite implementation of the storage driver interface.
type Driver struct {
	*sqldb.Store
}

// New creates the store file at path, opens it and applies the schema.
// The file must not exist: reinitializing a live store through a new
// connection is refused with a *driver.IOError wrapping fs.ErrExist.
func New(ctx context.Context, path string, opts ...Option) (*Driver, error) {
	cfg := options.Apply(defaultOptions(), opts)

	cfg.logger.Info("connecting to datasource", zap.String("path", path))

	err := createFile(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn(path, cfg))
	if err != nil {
		return nil, driver.NewBackendError("open", err)
	}

	db.SetMaxOpenConns(cfg.maxOpenConns)
	db.SetMaxIdleConns(cfg.maxOpenConns)

	return newDriver(ctx, db, cfg)
}

// NewWithDB uses an already opened database handle. The schema is applied
// idempotently. The driver takes ownership of db.
func NewWithDB(ctx context.Context, db *sql.DB, opts ...Option) (*Driver, error) {
	return newDriver(ctx, db, options.Apply(defaultOptions(), opts))
}

func newDriver(ctx context.Context, db *sql.DB, cfg sqliteOptions) (*Driver, error) {
	storeOpts := append([]sqldb.Option{sqldb.WithLogger(cfg.logger)}, cfg.store...)

	store, err := sqldb.New(ctx, db, Dialect, storeOpts...)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
	}

	return &Driver{Store: store}, nil
}

func createFile(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		return driver.NewIOError(path, err)
	}

	err = file.Close()
	if err != nil {
		return driver.NewIOError(path, err)
	}

	return nil
}

// dsn builds the connection string of the store at path. For more details
// on the format see https://pkg.go.dev/modernc.org/sqlite#Driver.Open.
func dsn(path string, cfg sqliteOptions) string {
	pragmas := []struct {
		name  string
		value string
	}{
		{"journal_mode", "WAL"},
		{"busy_timeout", fmt.Sprint(cfg.busyTimeout.Milliseconds())},
		{"synchronous", "full"},
	}

	params := make(url.Values)
	for _, pragma := range pragmas {
		params.Add(sqliteOptionPrefix, pragma.name+"="+pragma.value)
	}

	if cfg.sharedCache {
		params.Add("cache", "shared")
	}

	// The "file:" scheme keeps the URI parameters visible to sqlite itself.
	return fmt.Sprintf("file:%s?%s&%s", escapePath(path), params.Encode(), sqliteTxLockImmediate)
}

// escapePath percent-encodes every segment of path, so that "?", "#" and
// "%" in file names do not end the path part of the URI. sqlite decodes
// the escapes when it opens the file.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}

// IsRetryable reports whether err means the database was busy and the
// transaction may succeed when attempted again.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		// A concurrent writer took the revision. Other constraint
		// violations are permanent.
		if sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}

		switch sqliteErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return true
		default:
			return false
		}
	}

	// Some errors reach us unwrapped, with only the message left.
	return strings.Contains(err.Error(), "SQLITE_BUSY")
}
