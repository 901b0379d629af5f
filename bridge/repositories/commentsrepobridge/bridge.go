package commentsrepobridge

import (
	"errors"

	"github.com/jrazmi/taskboard/bridge/scaffolding/errs"
	"github.com/jrazmi/taskboard/core/repositories"
	"github.com/jrazmi/taskboard/core/repositories/commentsrepo"
)

// bridge provides HTTP handlers for Comment operations.
type bridge struct {
	commentsRepository *commentsrepo.Repository
}

func newBridge(commentsRepository *commentsrepo.Repository) *bridge {
	return &bridge{
		commentsRepository: commentsRepository,
	}
}

func repositoryError(err error) *errs.Error {
	if errors.Is(err, repositories.ErrNotFound) {
		return errs.New(errs.NotFound, err)
	}
	return errs.New(errs.Internal, err)
}
