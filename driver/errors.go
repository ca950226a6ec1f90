package driver

import (
	"errors"
	"fmt"
)

var (
	// ErrRetriesExceeded is returned when a transaction kept failing with a
	// retriable error more times than allowed.
	ErrRetriesExceeded = errors.New("transaction retries exceeded")
	// ErrUnsupported is returned when an engine cannot express a capability.
	ErrUnsupported = errors.New("unsupported by engine")
)

// BackendError wraps a failure of the underlying storage engine.
type BackendError struct {
	Op  string
	Err error
}

// Error returns the error message.
func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error: %s: %s", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewBackendError returns a new backend error for the operation op.
func NewBackendError(op string, err error) error {
	if err == nil {
		return nil
	}

	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return err
	}

	return &BackendError{
		Op:  op,
		Err: err,
	}
}

// IOError wraps a filesystem failure encountered while initializing a store.
type IOError struct {
	Path string
	Err  error
}

// Error returns the error message.
func (e *IOError) Error() string {
	return fmt.Sprintf("i/o error: %s: %s", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError returns a new I/O error for path.
func NewIOError(path string, err error) error {
	if err == nil {
		return nil
	}

	return &IOError{
		Path: path,
		Err:  err,
	}
}
