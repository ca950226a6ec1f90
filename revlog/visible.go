package revlog

import (
	"sort"
	"strings"

	"github.com/tarantool/go-revstore/kv"
)

// Separator is the hierarchy separator of key names.
const Separator = '/'

// IsHierarchical reports whether prefix denotes a directory-like scope rather
// than an exact key.
func IsHierarchical(prefix string) bool {
	return strings.HasSuffix(prefix, string(Separator))
}

// PrefixRange returns the half-open range [start, end) of names nested under
// a hierarchical prefix. The upper bound replaces the trailing separator with
// the byte that follows it.
func PrefixRange(prefix string) (string, string) {
	end := prefix[:len(prefix)-1] + string(rune(Separator+1))

	return prefix, end
}

// Matches reports whether name is selected by prefix.
func Matches(prefix, name string) bool {
	if IsHierarchical(prefix) {
		return strings.HasPrefix(name, prefix)
	}

	return name == prefix
}

// Visible derives the current rows selected by prefix from a log. For every
// matching name only the row with the greatest ID is kept, tombstones are
// dropped unless includeDeleted is set, the result is ordered by ascending ID
// and capped at limit when limit is positive.
func Visible(log []Row, prefix string, limit int64, includeDeleted bool) []Row {
	latest := make(map[string]int)

	for i, row := range log {
		if !Matches(prefix, row.Name) {
			continue
		}

		if j, ok := latest[row.Name]; !ok || log[j].ID < row.ID {
			latest[row.Name] = i
		}
	}

	rows := make([]Row, 0, len(latest))

	for _, i := range latest {
		if log[i].Deleted && !includeDeleted {
			continue
		}

		rows = append(rows, log[i])
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ID < rows[j].ID
	})

	if limit > 0 && int64(len(rows)) > limit {
		rows = rows[:limit]
	}

	return rows
}

// KeyValues projects rows onto the caller-facing view.
func KeyValues(rows []Row) []kv.KeyValue {
	out := make([]kv.KeyValue, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.KeyValue())
	}

	return out
}

// Current returns the live current row of exactly key. Hierarchical prefixes
// are not expanded, so a key ending with the separator only matches a row
// with that literal name.
func Current(log []Row, key string) (Row, bool) {
	found := -1

	for i, row := range log {
		if row.Name == key && (found < 0 || log[found].ID < row.ID) {
			found = i
		}
	}

	if found < 0 || log[found].Deleted {
		return Row{}, false //nolint:exhaustruct
	}

	return log[found], true
}
