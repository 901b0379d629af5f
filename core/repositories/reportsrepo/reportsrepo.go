// Package reportsrepo provides read only aggregates and reports that span
// projects and tasks. Each report is a single statement and so reads one
// snapshot.
package reportsrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/taskboard/sdk/logger"
)

// StringFunctionsLimit caps the rows returned by StringFunctions.
const StringFunctionsLimit = 50

// Storer defines the queries a report store must answer.
type Storer interface {
	ProjectAggregate(ctx context.Context) (ProjectAggregate, error)
	TaskAggregate(ctx context.Context) (TaskAggregate, error)
	TasksWithProject(ctx context.Context, left bool) ([]TaskWithProject, error)
	ProjectTaskCount(ctx context.Context) ([]ProjectTaskCount, error)
	NameUnion(ctx context.Context) ([]string, error)
	StringFunctions(ctx context.Context, limit int) ([]NameStats, error)
}

// Repository provides access to reports.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new report repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// ProjectAggregate returns the project count and budget sum. Both are zero
// on an empty table.
func (r *Repository) ProjectAggregate(ctx context.Context) (ProjectAggregate, error) {
	agg, err := r.storer.ProjectAggregate(ctx)
	if err != nil {
		return ProjectAggregate{}, fmt.Errorf("project aggregate: %w", err)
	}
	return agg, nil
}

// TaskAggregate returns the task count and average time estimation.
func (r *Repository) TaskAggregate(ctx context.Context) (TaskAggregate, error) {
	agg, err := r.storer.TaskAggregate(ctx)
	if err != nil {
		return TaskAggregate{}, fmt.Errorf("task aggregate: %w", err)
	}
	return agg, nil
}

// TasksWithProject joins every task to its project. With left set, tasks
// without a resolvable project are kept with empty project fields.
func (r *Repository) TasksWithProject(ctx context.Context, left bool) ([]TaskWithProject, error) {
	rows, err := r.storer.TasksWithProject(ctx, left)
	if err != nil {
		return nil, fmt.Errorf("tasks with project: %w", err)
	}
	return rows, nil
}

// ProjectTaskCount counts tasks per project, projects without tasks included.
func (r *Repository) ProjectTaskCount(ctx context.Context) ([]ProjectTaskCount, error) {
	rows, err := r.storer.ProjectTaskCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("project task count: %w", err)
	}
	return rows, nil
}

// NameUnion returns every project name followed by every task name.
// Duplicates are kept.
func (r *Repository) NameUnion(ctx context.Context) ([]string, error) {
	names, err := r.storer.NameUnion(ctx)
	if err != nil {
		return nil, fmt.Errorf("name union: %w", err)
	}
	return names, nil
}

// StringFunctions returns upper-cased names and name lengths for up to
// StringFunctionsLimit projects.
func (r *Repository) StringFunctions(ctx context.Context) ([]NameStats, error) {
	rows, err := r.storer.StringFunctions(ctx, StringFunctionsLimit)
	if err != nil {
		return nil, fmt.Errorf("string functions: %w", err)
	}
	return rows, nil
}
