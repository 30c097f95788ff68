// Package migrations embeds the SQL schema of the story service.
package migrations

import "embed"

// FS holds the golang-migrate *.up.sql / *.down.sql files.
//
//go:embed *.sql
var FS embed.FS
