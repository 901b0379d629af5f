// Package projectspgxstore implements projectsrepo.Storer on PostgreSQL.
package projectspgxstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskboard/core/repositories"
	"github.com/jrazmi/taskboard/core/repositories/projectsrepo"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
	"github.com/jrazmi/taskboard/sdk/logger"
)

const columns = `id, name, description, start_date, end_date, budget, is_active`

// Store provides database access for Project.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a new Project store
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// Create inserts a new Project
func (s *Store) Create(ctx context.Context, input projectsrepo.CreateProject) (projectsrepo.Project, error) {
	const query = `
	INSERT INTO projects (name, description, start_date, end_date, budget, is_active)
	VALUES (@name, @description, @start_date, @end_date, @budget, @is_active)
	RETURNING ` + columns

	args := pgx.NamedArgs{
		"name":        input.Name,
		"description": input.Description,
		"start_date":  input.StartDate,
		"end_date":    input.EndDate,
		"budget":      input.Budget,
		"is_active":   input.IsActive,
	}

	return s.queryOne(ctx, query, args)
}

// Get retrieves a single Project by ID
func (s *Store) Get(ctx context.Context, id int64) (projectsrepo.Project, error) {
	const query = `SELECT ` + columns + ` FROM projects WHERE id = @id`

	record, err := s.queryOne(ctx, query, pgx.NamedArgs{"id": id})
	if errors.Is(err, pgx.ErrNoRows) {
		return projectsrepo.Project{}, fmt.Errorf("project %d: %w", id, repositories.ErrNotFound)
	}
	return record, err
}

// Update writes every column of project.
func (s *Store) Update(ctx context.Context, project projectsrepo.Project) (projectsrepo.Project, error) {
	const query = `
	UPDATE projects SET
		name = @name,
		description = @description,
		start_date = @start_date,
		end_date = @end_date,
		budget = @budget,
		is_active = @is_active
	WHERE id = @id
	RETURNING ` + columns

	args := pgx.NamedArgs{
		"id":          project.ID,
		"name":        project.Name,
		"description": project.Description,
		"start_date":  project.StartDate,
		"end_date":    project.EndDate,
		"budget":      project.Budget,
		"is_active":   project.IsActive,
	}

	record, err := s.queryOne(ctx, query, args)
	if errors.Is(err, pgx.ErrNoRows) {
		return projectsrepo.Project{}, fmt.Errorf("project %d: %w", project.ID, repositories.ErrNotFound)
	}
	return record, err
}

// Delete removes a Project. Its tasks go with it through ON DELETE CASCADE.
func (s *Store) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM projects WHERE id = @id`

	result, err := s.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return postgresdb.HandlePgError(err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("project %d: %w", id, repositories.ErrNotFound)
	}

	return nil
}

// List retrieves Project records with filtering, ordering, and pagination
func (s *Store) List(ctx context.Context, filter projectsrepo.QueryFilter, orderBy fop.By, page fop.Page) ([]projectsrepo.Project, error) {
	query, args, err := buildListQuery(filter, orderBy, page)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[projectsrepo.Project])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}

func (s *Store) queryOne(ctx context.Context, query string, args pgx.NamedArgs) (projectsrepo.Project, error) {
	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return projectsrepo.Project{}, postgresdb.HandlePgError(err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[projectsrepo.Project])
	if err != nil {
		return projectsrepo.Project{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}
