package attachmentsrepobridge

import (
	"time"

	"github.com/jrazmi/taskboard/sdk/validation"
)

// CreateAttachmentInput is the request body for POST /attachments. Only comment_id is required.
type CreateAttachmentInput struct {
	CommentID *int64     `json:"comment_id" validate:"required"`
	FileName  *string    `json:"file_name" validate:"omitnil,max=255"`
	Type      *string    `json:"type" validate:"omitnil,max=100"`
	SizeKB    *int32     `json:"size_kb"`
	CreatedAt *time.Time `json:"created_at"`
	IsVisible *bool      `json:"is_visible"`
}

func (c CreateAttachmentInput) Validate() error {
	return validation.Check(c)
}

// UpdateAttachmentInput leaves the comment and the creation time alone.
type UpdateAttachmentInput struct {
	FileName  *string `json:"file_name" validate:"omitnil,max=255"`
	Type      *string `json:"type" validate:"omitnil,max=100"`
	SizeKB    *int32  `json:"size_kb"`
	IsVisible *bool   `json:"is_visible"`
}

func (u UpdateAttachmentInput) Validate() error {
	return validation.Check(u)
}
