// Package revstore provides a revisioned key-value store kept as an
// append-only log.
//
// Every mutation appends a row carrying a global, strictly increasing
// revision. The current state of keys is never stored separately: it is
// derived from the log on every read, which makes the store suitable as the
// datastore behind an etcd-compatible API layer.
//
// Storage engines live under the driver package: an in-memory arena, SQLite,
// PostgreSQL and etcd itself. See the [github.com/tarantool/go-revstore/typed]
// package for a typed view that marshals values to YAML.
package revstore
