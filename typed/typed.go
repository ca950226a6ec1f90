// Package typed provides a typed view over a revstore Backend.
// Values are marshalled to YAML by default and stored under a common key
// prefix, so a single Backend can host several typed collections.
//
// See [New] for configuration options and [Typed] for available operations.
package typed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-revstore"
	"github.com/tarantool/go-revstore/internal/options"
	"github.com/tarantool/go-revstore/kv"
	"github.com/tarantool/go-revstore/marshaller"
	"github.com/tarantool/go-revstore/revlog"
)

var (
	// ErrNotFound is returned by Get when the name is absent or deleted.
	ErrNotFound = errors.New("not found")
	// ErrInvalidName is returned when a name is empty or starts or ends with
	// "/", or when a list prefix starts with "/".
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidPrefix is returned by New when the collection prefix is not
	// an absolute hierarchical prefix like "/config/".
	ErrInvalidPrefix = errors.New("invalid prefix")
)

// Result is a decoded value together with its revisions.
type Result[T any] struct {
	Name           string
	CreateRevision kv.Revision
	ModRevision    kv.Revision
	Value          T
}

type typedOptions[T any] struct {
	marshaller marshaller.TypedMarshaller[T]
	prefix     string
}

// Option configures a typed view.
type Option[T any] func(*typedOptions[T])

// WithMarshaller sets the marshaller used to encode values.
func WithMarshaller[T any](m marshaller.TypedMarshaller[T]) Option[T] {
	return func(opts *typedOptions[T]) {
		opts.marshaller = m
	}
}

// WithPrefix sets the key prefix of the collection. It must start and end
// with "/". The default is "/".
func WithPrefix[T any](prefix string) Option[T] {
	return func(opts *typedOptions[T]) {
		opts.prefix = prefix
	}
}

// Typed stores values of type T in a Backend.
type Typed[T any] struct {
	base       revstore.Backend
	marshaller marshaller.TypedMarshaller[T]
	prefix     string
}

// New creates a typed view on top of base.
func New[T any](base revstore.Backend, opts ...Option[T]) (*Typed[T], error) {
	cfg := options.Apply(typedOptions[T]{
		marshaller: marshaller.NewTypedYamlMarshaller[T](),
		prefix:     string(revlog.Separator),
	}, opts)

	if !strings.HasPrefix(cfg.prefix, string(revlog.Separator)) || !revlog.IsHierarchical(cfg.prefix) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, cfg.prefix)
	}

	return &Typed[T]{
		base:       base,
		marshaller: cfg.marshaller,
		prefix:     cfg.prefix,
	}, nil
}

func checkName(name string) bool {
	switch {
	case len(name) == 0:
		return false
	case strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/"):
		return false
	default:
		return true
	}
}

func checkListPrefix(prefix string) bool {
	return !strings.HasPrefix(prefix, "/")
}

func (t *Typed[T]) key(name string) string {
	return t.prefix + name
}

// Put marshals val and stores it under name, returning the revision of the write.
func (t *Typed[T]) Put(ctx context.Context, name string, val T) (kv.Revision, error) {
	if !checkName(name) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	payload, err := t.marshaller.Marshal(val)
	if err != nil {
		return 0, &MarshalError{Key: t.key(name), Err: err}
	}

	rev, err := t.base.Put(ctx, t.key(name), payload)
	if err != nil {
		return 0, fmt.Errorf("put %q: %w", name, err)
	}

	return rev, nil
}

// Get returns the current value stored under name.
// ErrNotFound is returned when name is absent or deleted.
func (t *Typed[T]) Get(ctx context.Context, name string) (Result[T], error) {
	if !checkName(name) {
		return Result[T]{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	item, found, err := t.base.Get(ctx, t.key(name), option.None[kv.Revision]())
	switch {
	case err != nil:
		return Result[T]{}, fmt.Errorf("get %q: %w", name, err)
	case !found:
		return Result[T]{}, fmt.Errorf("get %q: %w", name, ErrNotFound)
	}

	return t.decode(item)
}

// List returns the values whose names start with prefix, ordered by
// ascending modification revision. An empty prefix lists the whole
// collection, a prefix ending with "/" lists a nested directory and any
// other prefix selects exactly one name. A non-positive limit is unbounded.
func (t *Typed[T]) List(ctx context.Context, prefix string, limit int64) ([]Result[T], error) {
	if !checkListPrefix(prefix) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, prefix)
	}

	kvs, err := t.base.ListCurrent(ctx, t.key(prefix), limit, false)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", prefix, err)
	}

	results := make([]Result[T], 0, len(kvs))
	for _, item := range kvs {
		result, err := t.decode(item)
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}

// Delete removes name. Deleting an absent name is not an error.
func (t *Typed[T]) Delete(ctx context.Context, name string) (kv.Revision, error) {
	if !checkName(name) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	rev, err := t.base.Delete(ctx, t.key(name))
	if err != nil {
		return 0, fmt.Errorf("delete %q: %w", name, err)
	}

	return rev, nil
}

func (t *Typed[T]) decode(item kv.KeyValue) (Result[T], error) {
	name := strings.TrimPrefix(item.Key, t.prefix)

	value, err := t.marshaller.Unmarshal(item.Value)
	if err != nil {
		return Result[T]{}, &UnmarshalError{Key: item.Key, ModRevision: item.ModRevision, Err: err}
	}

	return Result[T]{
		Name:           name,
		CreateRevision: item.CreateRevision,
		ModRevision:    item.ModRevision,
		Value:          value,
	}, nil
}
