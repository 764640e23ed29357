// Package migrations embeds the goose SQL migrations for the server store.
// The sqlite and postgres subtrees define the same schema; they differ only
// in the auto-assigned sequence column used to preserve insertion order.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// Sqlite returns the migration FS for the embedded sqlite backend.
func Sqlite() (fs.FS, error) {
	return fs.Sub(files, "sqlite")
}

// Postgres returns the migration FS for the postgres backend.
func Postgres() (fs.FS, error) {
	return fs.Sub(files, "postgres")
}
