// Package taskspgxstore implements tasksrepo.Storer on PostgreSQL.
package taskspgxstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskboard/core/repositories"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
	"github.com/jrazmi/taskboard/sdk/logger"
)

const columns = `id, project_id, name, priority, status, period_of_execution, time_estimation`

// Store provides database access for Task.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a new Task store
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// Create inserts a new Task. An unknown project_id surfaces as
// postgresdb.ErrForeignKeyViolation.
func (s *Store) Create(ctx context.Context, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	const query = `
	INSERT INTO tasks (project_id, name, priority, status, period_of_execution, time_estimation)
	VALUES (@project_id, @name, @priority, @status, @period_of_execution, @time_estimation)
	RETURNING ` + columns

	args := pgx.NamedArgs{
		"project_id":          input.ProjectID,
		"name":                input.Name,
		"priority":            input.Priority,
		"status":              input.Status,
		"period_of_execution": input.PeriodOfExecution,
		"time_estimation":     input.TimeEstimation,
	}

	return s.queryOne(ctx, query, args)
}

// Get retrieves a single Task by ID
func (s *Store) Get(ctx context.Context, id int64) (tasksrepo.Task, error) {
	const query = `SELECT ` + columns + ` FROM tasks WHERE id = @id`

	record, err := s.queryOne(ctx, query, pgx.NamedArgs{"id": id})
	if errors.Is(err, pgx.ErrNoRows) {
		return tasksrepo.Task{}, fmt.Errorf("task %d: %w", id, repositories.ErrNotFound)
	}
	return record, err
}

// Update writes every mutable column of task. project_id is never written.
func (s *Store) Update(ctx context.Context, task tasksrepo.Task) (tasksrepo.Task, error) {
	const query = `
	UPDATE tasks SET
		name = @name,
		priority = @priority,
		status = @status,
		period_of_execution = @period_of_execution,
		time_estimation = @time_estimation
	WHERE id = @id
	RETURNING ` + columns

	args := pgx.NamedArgs{
		"id":                  task.ID,
		"name":                task.Name,
		"priority":            task.Priority,
		"status":              task.Status,
		"period_of_execution": task.PeriodOfExecution,
		"time_estimation":     task.TimeEstimation,
	}

	record, err := s.queryOne(ctx, query, args)
	if errors.Is(err, pgx.ErrNoRows) {
		return tasksrepo.Task{}, fmt.Errorf("task %d: %w", task.ID, repositories.ErrNotFound)
	}
	return record, err
}

// Delete removes a Task and, by cascade, its comments and attachments.
func (s *Store) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM tasks WHERE id = @id`

	result, err := s.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("task %d: %w", id, repositories.ErrNotFound)
	}
	return nil
}

// List retrieves Task records with filtering, ordering, and pagination
func (s *Store) List(ctx context.Context, filter tasksrepo.QueryFilter, orderBy fop.By, page fop.Page) ([]tasksrepo.Task, error) {
	query, args, err := buildListQuery(filter, orderBy, page)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return records, nil
}

func (s *Store) queryOne(ctx context.Context, query string, args pgx.NamedArgs) (tasksrepo.Task, error) {
	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	return record, nil
}
