package attachmentsrepobridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/taskboard/bridge/scaffolding/errs"
	"github.com/jrazmi/taskboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskboard/core/repositories/attachmentsrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
)

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateAttachmentInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	attachment, err := b.attachmentsRepository.Create(ctx, MarshalCreateToRepository(input))
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(attachment)
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	filter, err := parseFilter(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	orderBy, page, err := fopbridge.ParseOrderPage(r, attachmentsrepo.OrderByFields)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	attachments, err := b.attachmentsRepository.List(ctx, filter, orderBy, page)
	if err != nil {
		return repositoryError(err)
	}

	return fopbridge.NewListResponse(attachments)
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parsePath(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	attachment, err := b.attachmentsRepository.Get(ctx, id)
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(attachment)
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parsePath(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	var input UpdateAttachmentInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	attachment, err := b.attachmentsRepository.Update(ctx, id, MarshalUpdateToRepository(input))
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(attachment)
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parsePath(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if err := b.attachmentsRepository.Delete(ctx, id); err != nil {
		return repositoryError(err)
	}

	return fopbridge.NewOKResponse()
}
