package projectsrepobridge

import (
	"errors"

	"github.com/jrazmi/taskboard/bridge/scaffolding/errs"
	"github.com/jrazmi/taskboard/core/repositories"
	"github.com/jrazmi/taskboard/core/repositories/projectsrepo"
)

// bridge provides HTTP handlers for Project operations.
type bridge struct {
	projectsRepository *projectsrepo.Repository
}

func newBridge(projectsRepository *projectsrepo.Repository) *bridge {
	return &bridge{
		projectsRepository: projectsRepository,
	}
}

// repositoryError maps a repository failure onto the response error.
func repositoryError(err error) *errs.Error {
	if errors.Is(err, repositories.ErrNotFound) {
		return errs.New(errs.NotFound, err)
	}
	return errs.New(errs.Internal, err)
}
