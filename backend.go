package revstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/tarantool/go-option"
	"go.uber.org/zap"

	"github.com/tarantool/go-revstore/driver"
	"github.com/tarantool/go-revstore/internal/options"
	"github.com/tarantool/go-revstore/kv"
)

// ErrNotImplemented is returned by Get when a point-in-time read is requested.
var ErrNotImplemented = errors.New("not implemented")

// Backend is the main interface of the revisioned store.
// It exposes the engine capabilities plus point reads of single keys.
type Backend interface {
	driver.Driver

	// Get returns the current value of key.
	// A read at an explicit revision is not supported and fails with
	// ErrNotImplemented. The boolean result is false when key is absent.
	Get(ctx context.Context, key string, revision option.Generic[kv.Revision]) (kv.KeyValue, bool, error)
}

// backendOptions contains configuration options for backend instances.
type backendOptions struct {
	logger *zap.Logger
}

// Option is a function that configures backend options.
type Option func(*backendOptions)

// WithLogger sets the logger used by the backend.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *backendOptions) {
		opts.logger = logger
	}
}

// backend is the concrete implementation of the Backend interface.
type backend struct {
	driver.Driver // Underlying storage engine.

	logger *zap.Logger
}

// New creates a new Backend on top of the specified driver.
// The backend takes ownership of the driver and closes it on Close.
func New(drv driver.Driver, opts ...Option) Backend {
	cfg := options.Apply(backendOptions{logger: zap.NewNop()}, opts)

	return &backend{
		Driver: drv,
		logger: cfg.logger,
	}
}

// Get implements the Backend interface.
func (b *backend) Get(
	ctx context.Context,
	key string,
	revision option.Generic[kv.Revision],
) (kv.KeyValue, bool, error) {
	if revision.IsSome() {
		b.logger.Debug("point-in-time read requested",
			zap.String("key", key),
			zap.Int64("revision", revision.UnwrapOr(0)),
		)

		return kv.KeyValue{}, false, fmt.Errorf("get at revision %d: %w", revision.UnwrapOr(0), ErrNotImplemented)
	}

	kvs, err := b.ListCurrent(ctx, key, 1, false)
	if err != nil {
		return kv.KeyValue{}, false, fmt.Errorf("get %q: %w", key, err)
	}

	if len(kvs) == 0 {
		return kv.KeyValue{}, false, nil
	}

	return kvs[0], true, nil
}
