package typed

import (
	"fmt"

	"github.com/tarantool/go-revstore/kv"
)

// MarshalError is returned by Put when a value cannot be encoded.
type MarshalError struct {
	// Key is the log key the value was meant for.
	Key string
	Err error
}

// Error returns a string representation of the marshalling error.
func (e *MarshalError) Error() string {
	return fmt.Sprintf("failed to marshal value of %q: %s", e.Key, e.Err)
}

// Unwrap returns the underlying marshaller error.
func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError is returned by Get and List when a stored payload cannot be
// decoded.
type UnmarshalError struct {
	// Key is the log key holding the payload.
	Key string
	// ModRevision is the revision that wrote the payload.
	ModRevision kv.Revision
	Err         error
}

// Error returns a string representation of the unmarshalling error.
func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal value of %q at revision %d: %s", e.Key, e.ModRevision, e.Err)
}

// Unwrap returns the underlying marshaller error.
func (e *UnmarshalError) Unwrap() error {
	return e.Err
}
