package reportsrepobridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/taskboard/bridge/scaffolding/errs"
	"github.com/jrazmi/taskboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskboard/core/repositories/reportsrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
)

type bridge struct {
	reportsRepository *reportsrepo.Repository
}

func newBridge(reportsRepository *reportsrepo.Repository) *bridge {
	return &bridge{
		reportsRepository: reportsRepository,
	}
}

func (b *bridge) httpProjectAggregate(ctx context.Context, r *http.Request) web.Encoder {
	agg, err := b.reportsRepository.ProjectAggregate(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}
	return web.NewJSONResponse(agg)
}

func (b *bridge) httpTaskAggregate(ctx context.Context, r *http.Request) web.Encoder {
	agg, err := b.reportsRepository.TaskAggregate(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}
	return web.NewJSONResponse(agg)
}

// httpTasksWithProject uses a left join unless left=false is given.
func (b *bridge) httpTasksWithProject(ctx context.Context, r *http.Request) web.Encoder {
	left, err := fopbridge.BoolParam("left", web.QueryParam(r, "left"))
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	rows, err := b.reportsRepository.TasksWithProject(ctx, left == nil || *left)
	if err != nil {
		return errs.New(errs.Internal, err)
	}
	return fopbridge.NewListResponse(rows)
}

func (b *bridge) httpProjectTaskCount(ctx context.Context, r *http.Request) web.Encoder {
	rows, err := b.reportsRepository.ProjectTaskCount(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}
	return fopbridge.NewListResponse(rows)
}

func (b *bridge) httpNameUnion(ctx context.Context, r *http.Request) web.Encoder {
	names, err := b.reportsRepository.NameUnion(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}
	return fopbridge.NewListResponse(names)
}

func (b *bridge) httpStringFunctions(ctx context.Context, r *http.Request) web.Encoder {
	rows, err := b.reportsRepository.StringFunctions(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}
	return fopbridge.NewListResponse(rows)
}
