// Package options implements the functional options used by every
// constructor of the module.
package options

// Callback mutates a configuration value in place.
type Callback[T any] interface {
	~func(*T)
}

// Apply starts from defaults and applies every callback in order.
// Nil callbacks are skipped.
func Apply[T any, C Callback[T]](defaults T, cbs []C) T {
	opts := defaults

	for _, cb := range cbs {
		if cb != nil {
			cb(&opts)
		}
	}

	return opts
}
