// Package attachmentsrepobridge contains HTTP route registration for Attachment
package attachmentsrepobridge

import (
	"github.com/jrazmi/taskboard/core/repositories/attachmentsrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// Config holds configuration for the Attachment bridge
type Config struct {
	Log        *logger.Logger
	Repository *attachmentsrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Attachment
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/attachments", b.httpList, cfg.Middleware...)
	group.GET("/attachments/{attachment_id}", b.httpGetByID, cfg.Middleware...)
	group.POST("/attachments", b.httpCreate, cfg.Middleware...)
	group.PUT("/attachments/{attachment_id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/attachments/{attachment_id}", b.httpDelete, cfg.Middleware...)
}
