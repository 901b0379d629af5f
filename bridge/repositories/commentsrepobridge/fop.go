package commentsrepobridge

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jrazmi/taskboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskboard/core/repositories/commentsrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
)

func parseFilter(r *http.Request) (commentsrepo.QueryFilter, error) {
	taskID, err := fopbridge.Int64Param("task_id", r.URL.Query().Get("task_id"))
	if err != nil {
		return commentsrepo.QueryFilter{}, err
	}

	return commentsrepo.QueryFilter{TaskID: taskID}, nil
}

func parsePath(r *http.Request) (int64, error) {
	raw := web.Param(r, "comment_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid comment_id: %q is not an integer", raw)
	}
	return id, nil
}
