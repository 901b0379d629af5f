package commentsrepo

import (
	"time"

	"github.com/jrazmi/taskboard/sdk/validation"
)

// Comment is a note left on a task.
type Comment struct {
	ID        int64      `db:"id" json:"id"`
	TaskID    int64      `db:"task_id" json:"task_id"`
	Author    *string    `db:"author" json:"author"`
	Message   *string    `db:"message" json:"message"`
	CreatedAt *time.Time `db:"created_at" json:"created_at"`
	IsEdit    bool       `db:"is_edit" json:"is_edit"`
	Rating    *int32     `db:"rating" json:"rating"`
}

// CreateComment contains fields for creating a new comment. CreatedAt is
// stored as given. A nil IsEdit defaults to false.
type CreateComment struct {
	TaskID    int64
	Author    *string
	Message   *string
	CreatedAt *time.Time
	IsEdit    *bool
	Rating    *int32
}

// UpdateComment contains the fields a comment update may change.
type UpdateComment struct {
	Author  *string
	Message *string
	IsEdit  *bool
	Rating  *int32
}

// Apply merges the supplied fields onto c.
func (u UpdateComment) Apply(c Comment) Comment {
	c.Author = validation.CoalescePtr(c.Author, u.Author)
	c.Message = validation.CoalescePtr(c.Message, u.Message)
	c.IsEdit = validation.Coalesce(c.IsEdit, u.IsEdit)
	c.Rating = validation.CoalescePtr(c.Rating, u.Rating)
	return c
}
