package commentsrepobridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/taskboard/bridge/scaffolding/errs"
	"github.com/jrazmi/taskboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskboard/core/repositories/commentsrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
)

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateCommentInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	comment, err := b.commentsRepository.Create(ctx, MarshalCreateToRepository(input))
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(comment)
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	filter, err := parseFilter(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	orderBy, page, err := fopbridge.ParseOrderPage(r, commentsrepo.OrderByFields)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	comments, err := b.commentsRepository.List(ctx, filter, orderBy, page)
	if err != nil {
		return repositoryError(err)
	}

	return fopbridge.NewListResponse(comments)
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parsePath(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	comment, err := b.commentsRepository.Get(ctx, id)
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(comment)
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parsePath(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	var input UpdateCommentInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	comment, err := b.commentsRepository.Update(ctx, id, MarshalUpdateToRepository(input))
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(comment)
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parsePath(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if err := b.commentsRepository.Delete(ctx, id); err != nil {
		return repositoryError(err)
	}

	return fopbridge.NewOKResponse()
}
