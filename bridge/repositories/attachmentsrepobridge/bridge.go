package attachmentsrepobridge

import (
	"errors"

	"github.com/jrazmi/taskboard/bridge/scaffolding/errs"
	"github.com/jrazmi/taskboard/core/repositories"
	"github.com/jrazmi/taskboard/core/repositories/attachmentsrepo"
)

// bridge provides HTTP handlers for Attachment operations.
type bridge struct {
	attachmentsRepository *attachmentsrepo.Repository
}

func newBridge(attachmentsRepository *attachmentsrepo.Repository) *bridge {
	return &bridge{
		attachmentsRepository: attachmentsRepository,
	}
}

func repositoryError(err error) *errs.Error {
	if errors.Is(err, repositories.ErrNotFound) {
		return errs.New(errs.NotFound, err)
	}
	return errs.New(errs.Internal, err)
}
