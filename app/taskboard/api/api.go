// Package api mounts the taskboard routes on a web handler.
package api

import (
	"context"
	"net/http"

	"github.com/jrazmi/taskboard/app/taskboard/config"
	"github.com/jrazmi/taskboard/bridge/repositories/attachmentsrepobridge"
	"github.com/jrazmi/taskboard/bridge/repositories/commentsrepobridge"
	"github.com/jrazmi/taskboard/bridge/repositories/projectsrepobridge"
	"github.com/jrazmi/taskboard/bridge/repositories/reportsrepobridge"
	"github.com/jrazmi/taskboard/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/taskboard/bridge/scaffolding/errs"
	"github.com/jrazmi/taskboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskboard/infrastructure/web"
)

// StatusChecker reports whether a dependency is reachable.
type StatusChecker func(ctx context.Context) error

// AddHandlers registers the health check and every entity and report route.
func AddHandlers(wh *web.WebHandler, cfg config.Taskboard, check StatusChecker) {
	group := wh.Group("")

	group.GET("/health", health(cfg.Build, check))

	projectsrepobridge.AddHttpRoutes(group, projectsrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Project,
	})
	tasksrepobridge.AddHttpRoutes(group, tasksrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Task,
	})
	commentsrepobridge.AddHttpRoutes(group, commentsrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Comment,
	})
	attachmentsrepobridge.AddHttpRoutes(group, attachmentsrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Attachment,
	})
	reportsrepobridge.AddHttpRoutes(group, reportsrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Report,
	})
}

func health(build string, check StatusChecker) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		if err := check(ctx); err != nil {
			return errs.Newf(errs.Internal, "database not ready: %s", err)
		}
		return fopbridge.NewCodeResponse("ok", build)
	}
}
