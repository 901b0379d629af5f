package attachmentsrepobridge

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jrazmi/taskboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskboard/core/repositories/attachmentsrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
)

func parseFilter(r *http.Request) (attachmentsrepo.QueryFilter, error) {
	commentID, err := fopbridge.Int64Param("comment_id", r.URL.Query().Get("comment_id"))
	if err != nil {
		return attachmentsrepo.QueryFilter{}, err
	}

	return attachmentsrepo.QueryFilter{CommentID: commentID}, nil
}

func parsePath(r *http.Request) (int64, error) {
	raw := web.Param(r, "attachment_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid attachment_id: %q is not an integer", raw)
	}
	return id, nil
}
