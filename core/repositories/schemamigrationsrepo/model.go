package schemamigrationsrepo

import "time"

// SchemaMigration is one applied migration file.
type SchemaMigration struct {
	Version   string    `db:"version" json:"version"`
	Checksum  string    `db:"checksum" json:"checksum"`
	AppliedAt time.Time `db:"applied_at" json:"applied_at"`
}

// Status compares the embedded migration files with what the database has
// recorded.
type Status struct {
	Applied []SchemaMigration
	Pending []string
}
