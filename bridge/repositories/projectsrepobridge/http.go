// Package projectsrepobridge contains HTTP route registration for Project
package projectsrepobridge

import (
	"github.com/jrazmi/taskboard/core/repositories/projectsrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// Config holds configuration for the Project bridge
type Config struct {
	Log        *logger.Logger
	Repository *projectsrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Project
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/projects", b.httpList, cfg.Middleware...)
	group.GET("/projects/{project_id}", b.httpGetByID, cfg.Middleware...)
	group.POST("/projects", b.httpCreate, cfg.Middleware...)
	group.PUT("/projects/{project_id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/projects/{project_id}", b.httpDelete, cfg.Middleware...)
}
