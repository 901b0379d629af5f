// Package attachmentsrepo provides the business access to comment
// attachments.
package attachmentsrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/sdk/logger"
	"github.com/jrazmi/taskboard/sdk/validation"
)

// Storer defines the data storage interface for Attachment.
type Storer interface {
	Create(ctx context.Context, input CreateAttachment) (Attachment, error)
	Get(ctx context.Context, id int64) (Attachment, error)
	Update(ctx context.Context, attachment Attachment) (Attachment, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter QueryFilter, orderBy fop.By, page fop.Page) ([]Attachment, error)
}

// Repository provides access to attachment storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Attachment repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

func (r *Repository) Create(ctx context.Context, input CreateAttachment) (Attachment, error) {
	if input.IsVisible == nil {
		input.IsVisible = validation.BoolPtr(true)
	}

	attachment, err := r.storer.Create(ctx, input)
	if err != nil {
		return Attachment{}, fmt.Errorf("create attachment: %w", err)
	}

	r.log.InfoContext(ctx, "attachment created", "attachment_id", attachment.ID, "comment_id", attachment.CommentID)
	return attachment, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (Attachment, error) {
	attachment, err := r.storer.Get(ctx, id)
	if err != nil {
		return Attachment{}, fmt.Errorf("get attachment: %w", err)
	}
	return attachment, nil
}

func (r *Repository) Update(ctx context.Context, id int64, input UpdateAttachment) (Attachment, error) {
	existing, err := r.storer.Get(ctx, id)
	if err != nil {
		return Attachment{}, fmt.Errorf("update attachment: %w", err)
	}

	attachment, err := r.storer.Update(ctx, input.Apply(existing))
	if err != nil {
		return Attachment{}, fmt.Errorf("update attachment: %w", err)
	}

	r.log.InfoContext(ctx, "attachment updated", "attachment_id", attachment.ID)
	return attachment, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.storer.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}

	r.log.InfoContext(ctx, "attachment deleted", "attachment_id", id)
	return nil
}

func (r *Repository) List(ctx context.Context, filter QueryFilter, orderBy fop.By, page fop.Page) ([]Attachment, error) {
	attachments, err := r.storer.List(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	return attachments, nil
}
