// Package migrations embeds the goose SQL migrations so the server can
// apply them at startup without shipping files alongside the binary.
package migrations

import "embed"

// FS holds the embedded migration files.
//
//go:embed *.sql
var FS embed.FS
