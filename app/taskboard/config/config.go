// Package config holds the dependencies the taskboard service builds at
// startup and hands to its routes.
package config

import (
	"github.com/jrazmi/taskboard/core/repositories/attachmentsrepo"
	"github.com/jrazmi/taskboard/core/repositories/attachmentsrepo/stores/attachmentspgxstore"
	"github.com/jrazmi/taskboard/core/repositories/commentsrepo"
	"github.com/jrazmi/taskboard/core/repositories/commentsrepo/stores/commentspgxstore"
	"github.com/jrazmi/taskboard/core/repositories/projectsrepo"
	"github.com/jrazmi/taskboard/core/repositories/projectsrepo/stores/projectspgxstore"
	"github.com/jrazmi/taskboard/core/repositories/reportsrepo"
	"github.com/jrazmi/taskboard/core/repositories/reportsrepo/stores/reportspgxstore"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// Repositories are the repositories served over HTTP.
type Repositories struct {
	Project    *projectsrepo.Repository
	Task       *tasksrepo.Repository
	Comment    *commentsrepo.Repository
	Attachment *attachmentsrepo.Repository
	Report     *reportsrepo.Repository
}

// NewPostgresRepositories builds every repository on its pgx store.
func NewPostgresRepositories(log *logger.Logger, pool *postgresdb.Pool) Repositories {
	return Repositories{
		Project:    projectsrepo.NewRepository(log, projectspgxstore.NewStore(log, pool)),
		Task:       tasksrepo.NewRepository(log, taskspgxstore.NewStore(log, pool)),
		Comment:    commentsrepo.NewRepository(log, commentspgxstore.NewStore(log, pool)),
		Attachment: attachmentsrepo.NewRepository(log, attachmentspgxstore.NewStore(log, pool)),
		Report:     reportsrepo.NewRepository(log, reportspgxstore.NewStore(log, pool)),
	}
}

// Taskboard is the overall configuration for the taskboard service.
type Taskboard struct {
	Build        string
	Logger       *logger.Logger
	Pool         *postgresdb.Pool
	Repositories Repositories
}
