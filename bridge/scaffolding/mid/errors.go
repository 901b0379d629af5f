package mid

import (
	"context"
	"errors"
	"net/http"
	"path"

	"github.com/jrazmi/taskboard/bridge/scaffolding/errs"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// Errors handles errors coming out of the call chain. Anything that is not
// an *errs.Error, and every internal error, leaves as a generic 500.
func Errors(log *logger.Logger) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)
			err := isError(resp)
			if err == nil {
				return resp
			}

			var appErr *errs.Error
			if !errors.As(err, &appErr) {
				appErr = errs.Newf(errs.Internal, "Internal Server Error")
			}

			attrs := []any{
				"err", err,
				"source_err_file", path.Base(appErr.FileName),
				"source_err_func", path.Base(appErr.FuncName),
			}

			switch appErr.Code {
			case errs.Internal, errs.InternalOnlyLog:
				log.ErrorContext(ctx, "handled error during request", attrs...)
				appErr = errs.Newf(errs.Internal, "Internal Server Error")
			default:
				log.InfoContext(ctx, "handled error during request", attrs...)
			}

			return appErr
		}
	}
}
