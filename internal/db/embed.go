package db

import "embed"

// migrationsFS holds one goose migration set per SQL dialect.
//
//go:embed migrations
var migrationsFS embed.FS
