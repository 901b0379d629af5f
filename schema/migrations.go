// Package schema contains the embedded PostgreSQL migrations for the
// projects, tasks, comments and attachments tables.
package schema

import "embed"

// MigrationsDir is the directory inside MigrationsFS holding the .sql files.
const MigrationsDir = "pgmigrations"

// MigrationsFS contains all SQL migration files from pgmigrations directory.
//
//go:embed pgmigrations/*.sql
var MigrationsFS embed.FS
