// Package migrations embeds the goose SQL migrations for the local store so
// the CLI can create its schema without the files being on disk.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
