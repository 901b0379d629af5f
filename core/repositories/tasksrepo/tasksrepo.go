// Package tasksrepo provides the business access to tasks.
package tasksrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// Storer defines the data storage interface for Task.
type Storer interface {
	Create(ctx context.Context, input CreateTask) (Task, error)
	Get(ctx context.Context, id int64) (Task, error)
	Update(ctx context.Context, task Task) (Task, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter QueryFilter, orderBy fop.By, page fop.Page) ([]Task, error)
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Task repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Create inserts a task. The project must exist.
func (r *Repository) Create(ctx context.Context, input CreateTask) (Task, error) {
	task, err := r.storer.Create(ctx, input)
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}

	r.log.InfoContext(ctx, "task created", "task_id", task.ID, "project_id", task.ProjectID)
	return task, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (Task, error) {
	task, err := r.storer.Get(ctx, id)
	if err != nil {
		return Task{}, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

func (r *Repository) Update(ctx context.Context, id int64, input UpdateTask) (Task, error) {
	existing, err := r.storer.Get(ctx, id)
	if err != nil {
		return Task{}, fmt.Errorf("update task: %w", err)
	}

	task, err := r.storer.Update(ctx, input.Apply(existing))
	if err != nil {
		return Task{}, fmt.Errorf("update task: %w", err)
	}

	r.log.InfoContext(ctx, "task updated", "task_id", task.ID)
	return task, nil
}

// Delete removes the task together with its comments and their attachments.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.storer.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	r.log.InfoContext(ctx, "task deleted", "task_id", id)
	return nil
}

func (r *Repository) List(ctx context.Context, filter QueryFilter, orderBy fop.By, page fop.Page) ([]Task, error) {
	tasks, err := r.storer.List(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}
