package commentsrepobridge

import (
	"time"

	"github.com/jrazmi/taskboard/sdk/validation"
)

// CreateCommentInput is the request body for POST /comments. Only task_id is required.
type CreateCommentInput struct {
	TaskID    *int64     `json:"task_id" validate:"required"`
	Author    *string    `json:"author" validate:"omitnil,max=255"`
	Message   *string    `json:"message"`
	CreatedAt *time.Time `json:"created_at"`
	IsEdit    *bool      `json:"is_edit"`
	Rating    *int32     `json:"rating"`
}

func (c CreateCommentInput) Validate() error {
	return validation.Check(c)
}

// UpdateCommentInput leaves the task and the creation time alone.
type UpdateCommentInput struct {
	Author  *string `json:"author" validate:"omitnil,max=255"`
	Message *string `json:"message"`
	IsEdit  *bool   `json:"is_edit"`
	Rating  *int32  `json:"rating"`
}

func (u UpdateCommentInput) Validate() error {
	return validation.Check(u)
}
