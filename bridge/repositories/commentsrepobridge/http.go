// Package commentsrepobridge contains HTTP route registration for Comment
package commentsrepobridge

import (
	"github.com/jrazmi/taskboard/core/repositories/commentsrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// Config holds configuration for the Comment bridge
type Config struct {
	Log        *logger.Logger
	Repository *commentsrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Comment
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/comments", b.httpList, cfg.Middleware...)
	group.GET("/comments/{comment_id}", b.httpGetByID, cfg.Middleware...)
	group.POST("/comments", b.httpCreate, cfg.Middleware...)
	group.PUT("/comments/{comment_id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/comments/{comment_id}", b.httpDelete, cfg.Middleware...)
}
