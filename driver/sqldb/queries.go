package sqldb

import (
	"fmt"
)

// Table is the name of the revision log table.
const Table = "revstore_log"

const (
	columns = "kv.id, kv.name, kv.created, kv.deleted, kv.create_revision, " +
		"kv.prev_revision, kv.lease, kv.value, kv.old_value"

	exactFilter  = "mkv.name = ?"
	prefixFilter = "mkv.name >= ? AND mkv.name < ?"

	// currentTemplate selects, for every name matched by the filter, the row
	// with the greatest id, then drops tombstones unless the next argument
	// is true.
	currentTemplate = `SELECT ` + columns + `
		FROM ` + Table + ` AS kv
		JOIN (
			SELECT MAX(mkv.id) AS id
			FROM ` + Table + ` AS mkv
			WHERE %s
			GROUP BY mkv.name
		) AS maxkv ON maxkv.id = kv.id
		WHERE (NOT kv.deleted OR ?)
		ORDER BY kv.id ASC`

	currentRevisionQuery = `SELECT COALESCE(MAX(id), 0) FROM ` + Table

	insertQuery = `INSERT INTO ` + Table + `
		(id, name, created, deleted, create_revision, prev_revision, lease, value, old_value)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
)

// queries is the fixed set of statements of a dialect.
type queries struct {
	size            string
	currentRevision string
	insert          string
	listExact       string
	listPrefix      string
	countExact      string
	countPrefix     string
}

func listQuery(filter string) string {
	return fmt.Sprintf(currentTemplate, filter) + "\n\t\tLIMIT ?"
}

func countQuery(filter string) string {
	return "SELECT COUNT(*) FROM (" + fmt.Sprintf(currentTemplate, filter) + ") AS c"
}

func renderQueries(rebind func(string) string, sizeQuery string) queries {
	return queries{
		size:            sizeQuery,
		currentRevision: currentRevisionQuery,
		insert:          rebind(insertQuery),
		listExact:       rebind(listQuery(exactFilter)),
		listPrefix:      rebind(listQuery(prefixFilter)),
		countExact:      rebind(countQuery(exactFilter)),
		countPrefix:     rebind(countQuery(prefixFilter)),
	}
}
