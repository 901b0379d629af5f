package tasksrepobridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/taskboard/bridge/scaffolding/errs"
	"github.com/jrazmi/taskboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
)

// httpCreate inserts a task. An unknown project_id is a store error.
func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	task, err := b.tasksRepository.Create(ctx, MarshalCreateToRepository(input))
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(task)
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	filter, err := parseFilter(parseQueryParams(r))
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	orderBy, page, err := fopbridge.ParseOrderPage(r, tasksrepo.OrderByFields)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tasks, err := b.tasksRepository.List(ctx, filter, orderBy, page)
	if err != nil {
		return repositoryError(err)
	}

	return fopbridge.NewListResponse(tasks)
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	qpath, err := parsePath(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.tasksRepository.Get(ctx, qpath.TaskID)
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(task)
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	qpath, err := parsePath(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	var input UpdateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	task, err := b.tasksRepository.Update(ctx, qpath.TaskID, MarshalUpdateToRepository(input))
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(task)
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	qpath, err := parsePath(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if err := b.tasksRepository.Delete(ctx, qpath.TaskID); err != nil {
		return repositoryError(err)
	}

	return fopbridge.NewOKResponse()
}
