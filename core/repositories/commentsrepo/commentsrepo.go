// Package commentsrepo provides the business access to task comments.
package commentsrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/sdk/logger"
	"github.com/jrazmi/taskboard/sdk/validation"
)

// Storer defines the data storage interface for Comment.
type Storer interface {
	Create(ctx context.Context, input CreateComment) (Comment, error)
	Get(ctx context.Context, id int64) (Comment, error)
	Update(ctx context.Context, comment Comment) (Comment, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter QueryFilter, orderBy fop.By, page fop.Page) ([]Comment, error)
}

// Repository provides access to comment storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Comment repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

func (r *Repository) Create(ctx context.Context, input CreateComment) (Comment, error) {
	if input.IsEdit == nil {
		input.IsEdit = validation.BoolPtr(false)
	}

	comment, err := r.storer.Create(ctx, input)
	if err != nil {
		return Comment{}, fmt.Errorf("create comment: %w", err)
	}

	r.log.InfoContext(ctx, "comment created", "comment_id", comment.ID, "task_id", comment.TaskID)
	return comment, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (Comment, error) {
	comment, err := r.storer.Get(ctx, id)
	if err != nil {
		return Comment{}, fmt.Errorf("get comment: %w", err)
	}
	return comment, nil
}

// Update merges input onto the stored comment. The task and created_at
// never change.
func (r *Repository) Update(ctx context.Context, id int64, input UpdateComment) (Comment, error) {
	existing, err := r.storer.Get(ctx, id)
	if err != nil {
		return Comment{}, fmt.Errorf("update comment: %w", err)
	}

	comment, err := r.storer.Update(ctx, input.Apply(existing))
	if err != nil {
		return Comment{}, fmt.Errorf("update comment: %w", err)
	}

	r.log.InfoContext(ctx, "comment updated", "comment_id", comment.ID)
	return comment, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.storer.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	r.log.InfoContext(ctx, "comment deleted", "comment_id", id)
	return nil
}

func (r *Repository) List(ctx context.Context, filter QueryFilter, orderBy fop.By, page fop.Page) ([]Comment, error) {
	comments, err := r.storer.List(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
