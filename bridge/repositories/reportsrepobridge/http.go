// Package reportsrepobridge exposes the aggregate, report and demo queries
// over HTTP.
package reportsrepobridge

import (
	"github.com/jrazmi/taskboard/core/repositories/reportsrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// Config holds configuration for the report bridge
type Config struct {
	Log        *logger.Logger
	Repository *reportsrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers the report routes. The aggregate paths are
// literal and take precedence over /projects/{project_id} and
// /tasks/{task_id}.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/projects/aggregate", b.httpProjectAggregate, cfg.Middleware...)
	group.GET("/tasks/aggregate", b.httpTaskAggregate, cfg.Middleware...)
	group.GET("/reports/tasks_with_project", b.httpTasksWithProject, cfg.Middleware...)
	group.GET("/reports/project_task_count", b.httpProjectTaskCount, cfg.Middleware...)
	group.GET("/demo/sets", b.httpNameUnion, cfg.Middleware...)
	group.GET("/demo/functions", b.httpStringFunctions, cfg.Middleware...)
}
