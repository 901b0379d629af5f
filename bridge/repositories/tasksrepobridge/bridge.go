package tasksrepobridge

import (
	"errors"

	"github.com/jrazmi/taskboard/bridge/scaffolding/errs"
	"github.com/jrazmi/taskboard/core/repositories"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
)

// bridge provides HTTP handlers for Task operations.
type bridge struct {
	tasksRepository *tasksrepo.Repository
}

func newBridge(tasksRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		tasksRepository: tasksRepository,
	}
}

func repositoryError(err error) *errs.Error {
	if errors.Is(err, repositories.ErrNotFound) {
		return errs.New(errs.NotFound, err)
	}
	return errs.New(errs.Internal, err)
}
