// Package schemamigrationsrepo reads the migration history kept in
// schema_migrations. Migrations are written by postgresdb.Migrate only.
package schemamigrationsrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/taskboard/sdk/logger"
)

// Storer defines the data storage interface for SchemaMigration.
type Storer interface {
	List(ctx context.Context) ([]SchemaMigration, error)
}

// Repository provides access to the migration history.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new SchemaMigration repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// List returns applied migrations ordered by version.
func (r *Repository) List(ctx context.Context) ([]SchemaMigration, error) {
	migrations, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schema migrations: %w", err)
	}
	return migrations, nil
}

// Status splits files into applied and pending versions. files are the
// migration file names as found on disk.
func (r *Repository) Status(ctx context.Context, files []string) (Status, error) {
	applied, err := r.List(ctx)
	if err != nil {
		return Status{}, err
	}

	seen := make(map[string]struct{}, len(applied))
	for _, m := range applied {
		seen[m.Version] = struct{}{}
	}

	status := Status{Applied: applied}
	for _, f := range files {
		if _, ok := seen[f]; !ok {
			status.Pending = append(status.Pending, f)
		}
	}

	return status, nil
}
