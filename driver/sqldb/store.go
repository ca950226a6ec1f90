// Package sqldb implements the revision log on top of database/sql. The
// algorithm is engine-agnostic; the engine packages (sqlite, postgres)
// supply a Dialect with their DDL, placeholder style and retry policy.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tarantool/go-option"
	"go.uber.org/zap"

	"github.com/tarantool/go-revstore/driver"
	"github.com/tarantool/go-revstore/internal/options"
	"github.com/tarantool/go-revstore/kv"
	"github.com/tarantool/go-revstore/revlog"
)

// ErrNoDialect is returned when a store is created without a dialect.
var ErrNoDialect = errors.New("no sql dialect")

type statements struct {
	size            *sql.Stmt
	currentRevision *sql.Stmt
	insert          *sql.Stmt
	listExact       *sql.Stmt
	listPrefix      *sql.Stmt
	countExact      *sql.Stmt
	countPrefix     *sql.Stmt
}

func (s statements) all() []*sql.Stmt {
	return []*sql.Stmt{
		s.size, s.currentRevision, s.insert,
		s.listExact, s.listPrefix, s.countExact, s.countPrefix,
	}
}

// Store is a revision log persisted in a SQL table.
type Store struct {
	db      *sql.DB
	dialect *Dialect
	stmts   statements
	opts    storeOptions
	logger  *zap.Logger
}

// New applies the schema of dialect to db and prepares the statements of the
// store. Applying the schema to an already initialized database is a no-op.
// The store takes ownership of db and closes it on Close.
func New(ctx context.Context, db *sql.DB, dialect *Dialect, opts ...Option) (*Store, error) {
	if dialect == nil {
		return nil, ErrNoDialect
	}

	cfg := options.Apply(defaultStoreOptions(), opts)

	store := &Store{
		db:      db,
		dialect: dialect,
		stmts:   statements{}, //nolint:exhaustruct
		opts:    cfg,
		logger:  cfg.logger.With(zap.String("dialect", dialect.Name)),
	}

	err := store.applySchema(ctx)
	if err != nil {
		return nil, err
	}

	err = store.prepare(ctx)
	if err != nil {
		store.closeStatements()
		return nil, err
	}

	store.logger.Info("backend setup complete")

	return store, nil
}

func (s *Store) applySchema(ctx context.Context) error {
	s.logger.Info("configuring database table schema and indexes, this may take a moment")

	return s.ExecTx(ctx, "schema", func(ctx context.Context, tx *sql.Tx) error {
		for _, migration := range s.dialect.Schema {
			s.logger.Debug("running migration", zap.String("sql", migration))

			_, err := tx.ExecContext(ctx, migration)
			if err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
		}

		return nil
	})
}

func (s *Store) prepare(ctx context.Context) error {
	q := s.dialect.rendered()

	targets := []struct {
		stmt  **sql.Stmt
		query string
	}{
		{&s.stmts.size, q.size},
		{&s.stmts.currentRevision, q.currentRevision},
		{&s.stmts.insert, q.insert},
		{&s.stmts.listExact, q.listExact},
		{&s.stmts.listPrefix, q.listPrefix},
		{&s.stmts.countExact, q.countExact},
		{&s.stmts.countPrefix, q.countPrefix},
	}

	for _, target := range targets {
		stmt, err := s.db.PrepareContext(ctx, target.query)
		if err != nil {
			return driver.NewBackendError("prepare", err)
		}

		*target.stmt = stmt
	}

	return nil
}

// DB returns the underlying database handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Size returns the approximate footprint of the store in bytes.
func (s *Store) Size(ctx context.Context) (uint64, error) {
	var size sql.NullInt64

	err := s.withRetry(ctx, "size", func() error {
		return s.stmts.size.QueryRowContext(ctx).Scan(&size)
	})
	if err != nil {
		return 0, err
	}

	if size.Int64 < 0 {
		return 0, nil
	}

	return uint64(size.Int64), nil
}

// CurrentRevision returns the greatest revision in the log, 0 if it is empty.
func (s *Store) CurrentRevision(ctx context.Context) (kv.Revision, error) {
	var rev kv.Revision

	err := s.withRetry(ctx, "current revision", func() error {
		var err error

		rev, err = currentRevision(ctx, s.stmts.currentRevision)

		return err
	})
	if err != nil {
		return 0, err
	}

	return rev, nil
}

// Count returns the number of live keys selected by prefix.
func (s *Store) Count(ctx context.Context, prefix string) (int64, error) {
	stmt, args := s.stmts.countExact, []any{prefix}
	if revlog.IsHierarchical(prefix) {
		start, end := revlog.PrefixRange(prefix)
		stmt, args = s.stmts.countPrefix, []any{start, end}
	}

	var count int64

	args = append(args, false)

	err := s.withRetry(ctx, "count", func() error {
		return stmt.QueryRowContext(ctx, args...).Scan(&count)
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ListCurrent returns the current rows selected by prefix ordered by
// ascending revision.
func (s *Store) ListCurrent(ctx context.Context, prefix string, limit int64, includeDeleted bool) ([]kv.KeyValue, error) {
	var rows []revlog.Row

	err := s.withRetry(ctx, "list", func() error {
		var err error

		rows, err = s.listCurrent(ctx, prefix, limit, includeDeleted)

		return err
	})
	if err != nil {
		return nil, err
	}

	return revlog.KeyValues(rows), nil
}

// Put appends a create or update event for key and returns its revision.
func (s *Store) Put(ctx context.Context, key string, value []byte) (kv.Revision, error) {
	if value == nil {
		value = []byte{}
	}

	var revision kv.Revision

	err := s.ExecTx(ctx, "put", func(ctx context.Context, tx *sql.Tx) error {
		rev, err := currentRevision(ctx, tx.StmtContext(ctx, s.stmts.currentRevision))
		if err != nil {
			return err
		}

		cur, found, err := s.current(ctx, tx, key)
		if err != nil {
			return err
		}

		row := revlog.NewCreate(rev+1, key, value)
		if found {
			row = revlog.NewUpdate(rev+1, cur, value)
		}

		err = s.insert(ctx, tx, row)
		if err != nil {
			return err
		}

		revision = row.ID

		return nil
	})
	if err != nil {
		return 0, err
	}

	return revision, nil
}

// Delete appends a tombstone for a live key and returns its revision.
// Deleting an absent key appends nothing and returns the current revision.
func (s *Store) Delete(ctx context.Context, key string) (kv.Revision, error) {
	var revision kv.Revision

	err := s.ExecTx(ctx, "delete", func(ctx context.Context, tx *sql.Tx) error {
		rev, err := currentRevision(ctx, tx.StmtContext(ctx, s.stmts.currentRevision))
		if err != nil {
			return err
		}

		cur, found, err := s.current(ctx, tx, key)
		if err != nil {
			return err
		}

		if !found {
			s.logger.Debug("delete of absent key", zap.String("key", key), zap.Int64("revision", rev))
			revision = rev

			return nil
		}

		row := revlog.NewTombstone(rev+1, cur)

		err = s.insert(ctx, tx, row)
		if err != nil {
			return err
		}

		revision = row.ID

		return nil
	})
	if err != nil {
		return 0, err
	}

	return revision, nil
}

// Close closes the prepared statements and the database handle.
func (s *Store) Close() error {
	s.closeStatements()

	err := s.db.Close()
	if err != nil {
		return driver.NewBackendError("close", err)
	}

	return nil
}

func (s *Store) closeStatements() {
	for _, stmt := range s.stmts.all() {
		if stmt != nil {
			_ = stmt.Close()
		}
	}
}

// current returns the live current row of exactly key.
func (s *Store) current(ctx context.Context, tx *sql.Tx, key string) (revlog.Row, bool, error) {
	var row revlog.Row

	err := scanRows(ctx, tx.StmtContext(ctx, s.stmts.listExact), func(r revlog.Row) {
		row = r
	}, key, false, int64(1))
	if err != nil {
		return row, false, err
	}

	return row, row.ID != 0, nil
}

func (s *Store) listCurrent(
	ctx context.Context,
	prefix string,
	limit int64,
	includeDeleted bool,
) ([]revlog.Row, error) {
	stmt, args := s.stmts.listExact, []any{prefix}
	if revlog.IsHierarchical(prefix) {
		start, end := revlog.PrefixRange(prefix)
		stmt, args = s.stmts.listPrefix, []any{start, end}
	}

	var out []revlog.Row

	args = append(args, includeDeleted, s.dialect.limitArg(limit))

	err := scanRows(ctx, stmt, func(r revlog.Row) {
		out = append(out, r)
	}, args...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Store) insert(ctx context.Context, tx *sql.Tx, row revlog.Row) error {
	_, err := tx.StmtContext(ctx, s.stmts.insert).ExecContext(ctx,
		row.ID,
		row.Name,
		row.Created,
		row.Deleted,
		row.CreateRevision,
		nullInt64(row.PrevRevision),
		nullInt64(row.Lease),
		nullBytes(row.Value),
		nullBytes(row.OldValue),
	)
	if err != nil {
		return fmt.Errorf("failed to append log row: %w", err)
	}

	s.logger.Debug("appended log row",
		zap.String("key", row.Name),
		zap.Int64("revision", row.ID),
		zap.Stringer("kind", row.Kind()),
	)

	return nil
}

func currentRevision(ctx context.Context, stmt *sql.Stmt) (kv.Revision, error) {
	var rev kv.Revision

	err := stmt.QueryRowContext(ctx).Scan(&rev)
	if err != nil {
		return 0, fmt.Errorf("failed to read current revision: %w", err)
	}

	return rev, nil
}

func scanRows(ctx context.Context, stmt *sql.Stmt, yield func(revlog.Row), args ...any) error {
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to query log: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var (
			row          revlog.Row
			prevRevision sql.NullInt64
			lease        sql.NullInt64
		)

		err = rows.Scan(
			&row.ID,
			&row.Name,
			&row.Created,
			&row.Deleted,
			&row.CreateRevision,
			&prevRevision,
			&lease,
			&row.Value,
			&row.OldValue,
		)
		if err != nil {
			return fmt.Errorf("failed to scan log row: %w", err)
		}

		row.PrevRevision = fromNullInt64(prevRevision)
		row.Lease = fromNullInt64(lease)

		// Engines may return an empty BLOB as NULL. Only tombstones lack a value.
		if row.Value == nil && !row.Deleted {
			row.Value = []byte{}
		}

		yield(row)
	}

	err = rows.Err()
	if err != nil {
		return fmt.Errorf("failed to iterate log rows: %w", err)
	}

	return nil
}

func nullInt64(value option.Generic[int64]) sql.NullInt64 {
	return sql.NullInt64{
		Int64: value.UnwrapOr(0),
		Valid: value.IsSome(),
	}
}

func fromNullInt64(value sql.NullInt64) option.Generic[int64] {
	if !value.Valid {
		return option.None[int64]()
	}

	return option.Some(value.Int64)
}

// nullBytes binds absent payloads as SQL NULL.
func nullBytes(value []byte) any {
	if value == nil {
		return nil
	}

	return value
}
