package migration

import "embed"

// Scripts holds the versioned goose migrations for MySQL.
//
//go:embed scripts/*.sql
var Scripts embed.FS

const scriptsDir = "scripts"
