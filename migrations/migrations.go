// Package migrations embeds the SQL schema for every supported database driver.
// Each driver has its own directory of golang-migrate up/down files.
package migrations

import "embed"

// FS holds the sqlite, postgresql and mysql migration directories.
//
//go:embed sqlite/*.sql postgresql/*.sql mysql/*.sql
var FS embed.FS
