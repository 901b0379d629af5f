// Package reportspgxstore implements reportsrepo.Storer on PostgreSQL.
package reportspgxstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskboard/core/repositories/reportsrepo"
	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
	"github.com/jrazmi/taskboard/sdk/logger"
)

const (
	projectAggregateQuery = `
	SELECT COUNT(*) AS count, COALESCE(SUM(budget), 0)::float8 AS sum_budget
	FROM projects`

	taskAggregateQuery = `
	SELECT COUNT(*) AS count, COALESCE(AVG(time_estimation), 0)::float8 AS avg_time
	FROM tasks`

	projectTaskCountQuery = `
	SELECT p.id AS project_id, p.name AS project_name, COUNT(t.id) AS task_count
	FROM projects p
	LEFT JOIN tasks t ON t.project_id = p.id
	GROUP BY p.id, p.name
	ORDER BY p.id`

	nameUnionQuery = `
	SELECT name FROM projects
	UNION ALL
	SELECT name FROM tasks`

	stringFunctionsQuery = `
	SELECT id, UPPER(name) AS name_upper, LENGTH(name) AS name_len
	FROM projects
	ORDER BY id
	LIMIT @limit`
)

// tasksWithProjectQuery returns the join for the requested mode.
func tasksWithProjectQuery(left bool) string {
	join := "JOIN"
	if left {
		join = "LEFT JOIN"
	}
	return `
	SELECT t.id AS task_id, t.name AS task_name, p.id AS project_id, p.name AS project_name
	FROM tasks t
	` + join + ` projects p ON p.id = t.project_id
	ORDER BY t.id`
}

// Store provides database access for reports.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a new report store
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// ProjectAggregate returns the project count and the summed budget.
func (s *Store) ProjectAggregate(ctx context.Context) (reportsrepo.ProjectAggregate, error) {
	return queryOne[reportsrepo.ProjectAggregate](ctx, s.pool, projectAggregateQuery, nil)
}

// TaskAggregate returns the task count and the average time estimation.
func (s *Store) TaskAggregate(ctx context.Context) (reportsrepo.TaskAggregate, error) {
	return queryOne[reportsrepo.TaskAggregate](ctx, s.pool, taskAggregateQuery, nil)
}

// TasksWithProject joins tasks to their project. With left set, tasks
// without a project are kept with null project columns.
func (s *Store) TasksWithProject(ctx context.Context, left bool) ([]reportsrepo.TaskWithProject, error) {
	return queryMany(ctx, s.pool, tasksWithProjectQuery(left), nil, pgx.RowToStructByName[reportsrepo.TaskWithProject])
}

// ProjectTaskCount counts tasks per project, including projects with none.
func (s *Store) ProjectTaskCount(ctx context.Context) ([]reportsrepo.ProjectTaskCount, error) {
	return queryMany(ctx, s.pool, projectTaskCountQuery, nil, pgx.RowToStructByName[reportsrepo.ProjectTaskCount])
}

// NameUnion returns every project name and task name, duplicates kept.
func (s *Store) NameUnion(ctx context.Context) ([]string, error) {
	return queryMany(ctx, s.pool, nameUnionQuery, nil, pgx.RowTo[string])
}

// StringFunctions returns the upper-cased name and name length of up to limit projects.
func (s *Store) StringFunctions(ctx context.Context, limit int) ([]reportsrepo.NameStats, error) {
	args := pgx.NamedArgs{"limit": limit}
	return queryMany(ctx, s.pool, stringFunctionsQuery, args, pgx.RowToStructByName[reportsrepo.NameStats])
}

func queryOne[T any](ctx context.Context, pool *postgresdb.Pool, query string, args pgx.NamedArgs) (T, error) {
	var zero T

	rows, err := pool.Query(ctx, query, queryArgs(args)...)
	if err != nil {
		return zero, postgresdb.HandlePgError(err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, postgresdb.HandlePgError(err)
	}
	return record, nil
}

func queryMany[T any](ctx context.Context, pool *postgresdb.Pool, query string, args pgx.NamedArgs, fn pgx.RowToFunc[T]) ([]T, error) {
	rows, err := pool.Query(ctx, query, queryArgs(args)...)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	records, err := pgx.CollectRows(rows, fn)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return records, nil
}

func queryArgs(args pgx.NamedArgs) []any {
	if args == nil {
		return nil
	}
	return []any{args}
}
