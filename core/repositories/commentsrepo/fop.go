package commentsrepo

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	TaskID *int64
}

// Set of columns a comment list can be ordered by.
const (
	OrderByPK        = "id"
	OrderByTaskID    = "task_id"
	OrderByAuthor    = "author"
	OrderByMessage   = "message"
	OrderByCreatedAt = "created_at"
	OrderByIsEdit    = "is_edit"
	OrderByRating    = "rating"
)

var OrderByFields = map[string]string{
	"id":         OrderByPK,
	"task_id":    OrderByTaskID,
	"author":     OrderByAuthor,
	"message":    OrderByMessage,
	"created_at": OrderByCreatedAt,
	"is_edit":    OrderByIsEdit,
	"rating":     OrderByRating,
}
