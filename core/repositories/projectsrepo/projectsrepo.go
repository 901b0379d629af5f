// Package projectsrepo provides the business access to projects.
package projectsrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/sdk/logger"
	"github.com/jrazmi/taskboard/sdk/validation"
)

// Storer defines the data storage interface for Project. Get, Update and
// Delete return a wrapped repositories.ErrNotFound for unknown ids.
type Storer interface {
	Create(ctx context.Context, input CreateProject) (Project, error)
	Get(ctx context.Context, id int64) (Project, error)
	Update(ctx context.Context, project Project) (Project, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter QueryFilter, orderBy fop.By, page fop.Page) ([]Project, error)
}

// Repository provides access to project storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Project repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Create inserts a project, defaulting IsActive to true.
func (r *Repository) Create(ctx context.Context, input CreateProject) (Project, error) {
	if input.IsActive == nil {
		input.IsActive = validation.BoolPtr(true)
	}

	project, err := r.storer.Create(ctx, input)
	if err != nil {
		return Project{}, fmt.Errorf("create project: %w", err)
	}

	r.log.InfoContext(ctx, "project created", "project_id", project.ID)
	return project, nil
}

// Get returns the project with id.
func (r *Repository) Get(ctx context.Context, id int64) (Project, error) {
	project, err := r.storer.Get(ctx, id)
	if err != nil {
		return Project{}, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}

// Update applies the supplied fields to the stored project and returns the
// result. Concurrent updates are last write wins.
func (r *Repository) Update(ctx context.Context, id int64, input UpdateProject) (Project, error) {
	existing, err := r.storer.Get(ctx, id)
	if err != nil {
		return Project{}, fmt.Errorf("update project: %w", err)
	}

	project, err := r.storer.Update(ctx, input.Apply(existing))
	if err != nil {
		return Project{}, fmt.Errorf("update project: %w", err)
	}

	r.log.InfoContext(ctx, "project updated", "project_id", project.ID)
	return project, nil
}

// Delete removes the project and, through the store, all of its tasks,
// comments and attachments.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.storer.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	r.log.InfoContext(ctx, "project deleted", "project_id", id)
	return nil
}

// List returns the projects matching filter, ordered and paged.
func (r *Repository) List(ctx context.Context, filter QueryFilter, orderBy fop.By, page fop.Page) ([]Project, error) {
	projects, err := r.storer.List(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}
