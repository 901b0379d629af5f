package attachmentsrepo

import (
	"time"

	"github.com/jrazmi/taskboard/sdk/validation"
)

// Attachment is file metadata hung off a comment. File contents are not
// stored.
type Attachment struct {
	ID        int64      `db:"id" json:"id"`
	CommentID int64      `db:"comment_id" json:"comment_id"`
	FileName  *string    `db:"file_name" json:"file_name"`
	Type      *string    `db:"type" json:"type"`
	SizeKB    *int32     `db:"size_kb" json:"size_kb"`
	CreatedAt *time.Time `db:"created_at" json:"created_at"`
	IsVisible bool       `db:"is_visible" json:"is_visible"`
}

// CreateAttachment contains fields for creating a new attachment. A nil
// IsVisible defaults to true.
type CreateAttachment struct {
	CommentID int64
	FileName  *string
	Type      *string
	SizeKB    *int32
	CreatedAt *time.Time
	IsVisible *bool
}

// UpdateAttachment contains the fields an attachment update may change.
type UpdateAttachment struct {
	FileName  *string
	Type      *string
	SizeKB    *int32
	IsVisible *bool
}

func (u UpdateAttachment) Apply(a Attachment) Attachment {
	a.FileName = validation.CoalescePtr(a.FileName, u.FileName)
	a.Type = validation.CoalescePtr(a.Type, u.Type)
	a.SizeKB = validation.CoalescePtr(a.SizeKB, u.SizeKB)
	a.IsVisible = validation.Coalesce(a.IsVisible, u.IsVisible)
	return a
}
