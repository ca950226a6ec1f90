package sqldb

import (
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultNumTxRetries is the default number of attempts of a transaction
	// failing with a retriable error.
	DefaultNumTxRetries = 20
	// DefaultRetryDelay is the base delay between two attempts.
	DefaultRetryDelay = 10 * time.Millisecond
	// DefaultMaxRetryDelay caps the exponential backoff.
	DefaultMaxRetryDelay = time.Second
)

type storeOptions struct {
	logger        *zap.Logger
	numRetries    int
	retryDelay    time.Duration
	maxRetryDelay time.Duration
}

func defaultStoreOptions() storeOptions {
	return storeOptions{
		logger:        zap.NewNop(),
		numRetries:    DefaultNumTxRetries,
		retryDelay:    DefaultRetryDelay,
		maxRetryDelay: DefaultMaxRetryDelay,
	}
}

// Option is a function that configures a Store.
type Option func(*storeOptions)

// WithLogger sets the logger used by the store.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *storeOptions) {
		opts.logger = logger
	}
}

// WithTxRetries sets how many times a transaction failing with a retriable
// error is attempted.
func WithTxRetries(numRetries int) Option {
	return func(opts *storeOptions) {
		opts.numRetries = numRetries
	}
}

// WithTxRetryDelay sets the base delay between two attempts of a transaction.
func WithTxRetryDelay(delay time.Duration) Option {
	return func(opts *storeOptions) {
		opts.retryDelay = delay
	}
}

// WithMaxRetryDelay caps the delay between two attempts of a transaction.
func WithMaxRetryDelay(delay time.Duration) Option {
	return func(opts *storeOptions) {
		opts.maxRetryDelay = delay
	}
}
