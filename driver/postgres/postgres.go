// Package postgres provides a PostgreSQL implementation of the storage driver
// interface. Mutations run at serializable isolation and are retried when
// PostgreSQL reports a serialization conflict.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // Register the "pgx" database/sql driver.
	"go.uber.org/zap"

	"github.com/tarantool/go-revstore/driver"
	"github.com/tarantool/go-revstore/driver/sqldb"
	"github.com/tarantool/go-revstore/internal/options"
)

const (
	defaultMaxConns = 25

	redacted = "[redacted]"

	// primaryKeyConstraint is the name PostgreSQL gives the primary key of
	// the log table.
	primaryKeyConstraint = sqldb.Table + "_pkey"
)

var (
	// Dialect is the PostgreSQL rendition of the revision log.
	Dialect = &sqldb.Dialect{ //nolint:gochecknoglobals,exhaustruct
		Name: "postgres",
		Schema: []string{
			`CREATE TABLE IF NOT EXISTS ` + sqldb.Table + ` (
				id BIGINT PRIMARY KEY,
				name TEXT COLLATE "C" NOT NULL,
				created BOOLEAN NOT NULL,
				deleted BOOLEAN NOT NULL,
				create_revision BIGINT NOT NULL,
				prev_revision BIGINT,
				lease BIGINT,
				value BYTEA,
				old_value BYTEA
			)`,
			`CREATE INDEX IF NOT EXISTS revstore_log_name_index ON ` + sqldb.Table + ` (name)`,
			`CREATE INDEX IF NOT EXISTS revstore_log_name_id_index ON ` + sqldb.Table + ` (name, id)`,
			`CREATE INDEX IF NOT EXISTS revstore_log_id_deleted_index ON ` + sqldb.Table + ` (id, deleted)`,
			`CREATE INDEX IF NOT EXISTS revstore_log_prev_revision_index ON ` + sqldb.Table + ` (prev_revision)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS revstore_log_name_prev_revision_uindex ON ` +
				sqldb.Table + ` (name, prev_revision)`,
		},
		SizeQuery:            "SELECT pg_total_relation_size('" + sqldb.Table + "')",
		NumberedPlaceholders: true,
		UnboundedLimit:       nil,
		WriteTxOptions:       &sql.TxOptions{Isolation: sql.LevelSerializable, ReadOnly: false},
		IsRetryable:          IsRetryable,
	}

	_ driver.Driver = &Driver{} //nolint:exhaustruct
)

type postgresOptions struct {
	logger       *zap.Logger
	store        []sqldb.Option
	maxOpenConns int
}

func defaultOptions() postgresOptions {
	return postgresOptions{
		logger:       zap.NewNop(),
		store:        nil,
		maxOpenConns: defaultMaxConns,
	}
}

// Option is a function that configures the PostgreSQL driver.
type Option func(*postgresOptions)

// WithLogger sets the logger used by the driver.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *postgresOptions) {
		opts.logger = logger
	}
}

// WithStoreOptions passes options to the underlying sqldb.Store.
func WithStoreOptions(storeOpts ...sqldb.Option) Option {
	return func(opts *postgresOptions) {
		opts.store = append(opts.store, storeOpts...)
	}
}

// WithMaxOpenConns sets the size of the connection pool.
func WithMaxOpenConns(n int) Option {
	return func(opts *postgresOptions) {
		opts.maxOpenConns = n
	}
}

// Driver is a PostgreSQL implementation of the storage driver interface.
type Driver struct {
	*sqldb.Store
}

// New connects to the database described by dsn and applies the schema.
func New(ctx context.Context, dsn string, opts ...Option) (*Driver, error) {
	cfg := options.Apply(defaultOptions(), opts)

	cfg.logger.Info("connecting to datasource", zap.String("dsn", redactDSN(dsn)))

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, driver.NewBackendError("open", err)
	}

	db.SetMaxOpenConns(cfg.maxOpenConns)
	db.SetMaxIdleConns(cfg.maxOpenConns)

	err = db.PingContext(ctx)
	if err != nil {
		_ = db.Close()
		return nil, driver.NewBackendError("connect", err)
	}

	return newDriver(ctx, db, cfg)
}

// NewWithDB uses an already opened database handle. The schema is applied
// idempotently. The driver takes ownership of db.
func NewWithDB(ctx context.Context, db *sql.DB, opts ...Option) (*Driver, error) {
	return newDriver(ctx, db, options.Apply(defaultOptions(), opts))
}

func newDriver(ctx context.Context, db *sql.DB, cfg postgresOptions) (*Driver, error) {
	storeOpts := append([]sqldb.Option{sqldb.WithLogger(cfg.logger)}, cfg.store...)

	store, err := sqldb.New(ctx, db, Dialect, storeOpts...)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize postgres store: %w", err)
	}

	return &Driver{Store: store}, nil
}

// redactDSN hides the password of a URL-style dsn. Keyword/value
// connection strings are not logged at all.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.Scheme == "" {
		return redacted
	}

	return u.Redacted()
}

// IsRetryable reports whether err is a serialization conflict, a deadlock or
// a revision taken by a concurrent writer. Violations of other unique
// constraints are permanent.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return true
	case pgerrcode.UniqueViolation:
		return pgErr.ConstraintName == primaryKeyConstraint
	default:
		return false
	}
}
