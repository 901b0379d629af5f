package tasksrepobridge

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jrazmi/taskboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
)

// PARAMS
type QueryParams struct {
	ProjectID string
	Status    string
	Priority  string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		ProjectID: q.Get("project_id"),
		Status:    q.Get("status"),
		Priority:  q.Get("priority"),
	}
}

// FILTER
func parseFilter(qp QueryParams) (tasksrepo.QueryFilter, error) {
	filter := tasksrepo.QueryFilter{
		Status:   fopbridge.StringParam(qp.Status),
		Priority: fopbridge.StringParam(qp.Priority),
	}

	var err error
	if filter.ProjectID, err = fopbridge.Int64Param("project_id", qp.ProjectID); err != nil {
		return filter, err
	}

	return filter, nil
}

// PATH
type queryPath struct {
	TaskID int64
}

func parsePath(r *http.Request) (queryPath, error) {
	raw := web.Param(r, "task_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return queryPath{}, fmt.Errorf("invalid task_id: %q is not an integer", raw)
	}

	return queryPath{TaskID: id}, nil
}
