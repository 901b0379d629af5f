package projectsrepobridge

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jrazmi/taskboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskboard/core/repositories/projectsrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
)

// PARAMS
type QueryParams struct {
	Name      string
	MinBudget string
	MaxBudget string
	IsActive  string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Name:      q.Get("name"),
		MinBudget: q.Get("min_budget"),
		MaxBudget: q.Get("max_budget"),
		IsActive:  q.Get("is_active"),
	}
}

// FILTER
func parseFilter(qp QueryParams) (projectsrepo.QueryFilter, error) {
	filter := projectsrepo.QueryFilter{
		Name: fopbridge.StringParam(qp.Name),
	}

	var err error
	if filter.MinBudget, err = fopbridge.Float64Param("min_budget", qp.MinBudget); err != nil {
		return filter, err
	}
	if filter.MaxBudget, err = fopbridge.Float64Param("max_budget", qp.MaxBudget); err != nil {
		return filter, err
	}
	if filter.IsActive, err = fopbridge.BoolParam("is_active", qp.IsActive); err != nil {
		return filter, err
	}

	return filter, nil
}

// PATH
type queryPath struct {
	ProjectID int64
}

func parsePath(r *http.Request) (queryPath, error) {
	raw := web.Param(r, "project_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return queryPath{}, fmt.Errorf("invalid project_id: %q is not an integer", raw)
	}

	return queryPath{ProjectID: id}, nil
}
