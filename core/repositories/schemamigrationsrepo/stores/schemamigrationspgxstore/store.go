// Package schemamigrationspgxstore implements schemamigrationsrepo.Storer on
// PostgreSQL.
package schemamigrationspgxstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskboard/core/repositories/schemamigrationsrepo"
	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// Store provides database access for SchemaMigration.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a new SchemaMigration store
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// List returns every applied migration. A database that was never migrated
// has no schema_migrations table and yields an empty history.
func (s *Store) List(ctx context.Context) ([]schemamigrationsrepo.SchemaMigration, error) {
	const query = `SELECT version, checksum, applied_at FROM schema_migrations ORDER BY version`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, s.listError(err)
	}

	migrations, err := pgx.CollectRows(rows, pgx.RowToStructByName[schemamigrationsrepo.SchemaMigration])
	if err != nil {
		return nil, s.listError(err)
	}

	return migrations, nil
}

func (s *Store) listError(err error) error {
	err = postgresdb.HandlePgError(err)
	if errors.Is(err, postgresdb.ErrUndefinedTable) {
		return nil
	}
	return err
}
