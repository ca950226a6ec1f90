package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/tarantool/go-revstore/driver"
)

// TxBody is the work done inside one database transaction.
type TxBody func(ctx context.Context, tx *sql.Tx) error

// randRetryDelay returns a random delay between 50% and 150% of the base
// delay, doubled for each attempt and capped at maxDelay.
func randRetryDelay(base, maxDelay time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}

	delay := base/2 + time.Duration(rand.Int64N(int64(base))) //nolint:gosec

	if attempt > 0 {
		delay *= time.Duration(math.Pow(2, min(float64(attempt), 32)))
	}

	if maxDelay > 0 && delay > maxDelay {
		return maxDelay
	}

	return delay
}

// ExecTx runs body in a transaction and commits it. A transaction failing
// with an error the dialect reports as retriable is rolled back and attempted
// again after a randomized backoff. Any other failure is returned as a
// *driver.BackendError tagged with op.
func (s *Store) ExecTx(ctx context.Context, op string, body TxBody) error {
	return s.withRetry(ctx, op, func() error {
		return s.attemptTx(ctx, body)
	})
}

// withRetry calls attempt until it succeeds, fails with an error that is not
// retriable, the context is done or the attempts are exhausted. On exhaustion
// the error wraps both ErrRetriesExceeded and the last engine error.
func (s *Store) withRetry(ctx context.Context, op string, attempt func() error) error {
	numAttempts := max(s.opts.numRetries, 1)

	var lastErr error

	for i := range numAttempts {
		err := attempt()

		switch {
		case err == nil:
			return nil
		case !s.dialect.retryable(err):
			return driver.NewBackendError(op, err)
		}

		lastErr = err

		if i == numAttempts-1 {
			break
		}

		delay := randRetryDelay(s.opts.retryDelay, s.opts.maxRetryDelay, i)

		s.logger.Warn("retrying",
			zap.String("op", op),
			zap.Int("attempt", i+1),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return driver.NewBackendError(op, ctx.Err())
		}
	}

	return driver.NewBackendError(op, fmt.Errorf("%w: %w", driver.ErrRetriesExceeded, lastErr))
}

func (s *Store) attemptTx(ctx context.Context, body TxBody) error {
	tx, err := s.db.BeginTx(ctx, s.dialect.WriteTxOptions)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Rollback is a no-op once the transaction is committed.
	defer func() {
		_ = tx.Rollback()
	}()

	err = body(ctx, tx)
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
