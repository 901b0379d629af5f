package attachmentsrepo

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	CommentID *int64
}

// Set of columns an attachment list can be ordered by.
const (
	OrderByPK        = "id"
	OrderByCommentID = "comment_id"
	OrderByFileName  = "file_name"
	OrderByType      = "type"
	OrderBySizeKB    = "size_kb"
	OrderByCreatedAt = "created_at"
	OrderByIsVisible = "is_visible"
)

var OrderByFields = map[string]string{
	"id":         OrderByPK,
	"comment_id": OrderByCommentID,
	"file_name":  OrderByFileName,
	"type":       OrderByType,
	"size_kb":    OrderBySizeKB,
	"created_at": OrderByCreatedAt,
	"is_visible": OrderByIsVisible,
}
