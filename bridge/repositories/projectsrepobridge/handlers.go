package projectsrepobridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/taskboard/bridge/scaffolding/errs"
	"github.com/jrazmi/taskboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskboard/core/repositories/projectsrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
)

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateProjectInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	project, err := b.projectsRepository.Create(ctx, MarshalCreateToRepository(input))
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(project)
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	filter, err := parseFilter(parseQueryParams(r))
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	orderBy, page, err := fopbridge.ParseOrderPage(r, projectsrepo.OrderByFields)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	projects, err := b.projectsRepository.List(ctx, filter, orderBy, page)
	if err != nil {
		return repositoryError(err)
	}

	return fopbridge.NewListResponse(projects)
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	qpath, err := parsePath(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	project, err := b.projectsRepository.Get(ctx, qpath.ProjectID)
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(project)
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	qpath, err := parsePath(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	var input UpdateProjectInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	project, err := b.projectsRepository.Update(ctx, qpath.ProjectID, MarshalUpdateToRepository(input))
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(project)
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	qpath, err := parsePath(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if err := b.projectsRepository.Delete(ctx, qpath.ProjectID); err != nil {
		return repositoryError(err)
	}

	return fopbridge.NewOKResponse()
}
