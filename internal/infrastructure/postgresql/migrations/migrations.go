// Package migrations holds the SQL migrations of the event log.
package migrations

import "embed"

// FS contains every *.up.sql and *.down.sql migration.
//
//go:embed *.sql
var FS embed.FS
