package migrations

import "embed"

// FS holds the SQL schema applied by db.RunMigrations on startup.
//
//go:embed *.sql
var FS embed.FS
