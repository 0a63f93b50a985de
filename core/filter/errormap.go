package filter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gatekit/gatekit/core/handler"
	"github.com/gatekit/gatekit/core/httperr"
	"github.com/gatekit/gatekit/core/logger"
	"github.com/gatekit/gatekit/core/request"
)

// ErrorMapping returns the error-mapping filter. It is the only place the
// framework observes failures from handlers and filters nested inside it:
// errors carrying a status code become responses with that status, client
// error messages (4xx) pass through to the body, and everything else,
// recovered panics included, becomes a generic 500 whose detail is logged
// but suppressed from the client.
//
// Being an ordinary filter, it only protects what it wraps. A filter
// declared outside it fails unmapped unless another error-mapping filter
// wraps that one too.
func ErrorMapping(log *slog.Logger) handler.Filter {
	if log == nil {
		log = noopLogger()
	}
	return func(ctx context.Context, req *request.Request, next handler.Handler) (resp *request.Response, err error) {
		defer func() {
			if p := recover(); p != nil {
				log.ErrorContext(ctx, "panic in handler",
					slog.Any("value", p),
					slog.String("stack", string(debug.Stack())),
					logger.Method(req.Method),
					logger.Path(req.Path),
				)
				resp = errorResponse(http.StatusInternalServerError, "Internal Server Error")
				err = nil
			}
		}()

		resp, err = next(ctx, req)
		if err == nil {
			return resp, nil
		}

		status := http.StatusInternalServerError
		var sc httperr.StatusCoder
		if errors.As(err, &sc) {
			status = sc.StatusCode()
		}

		message := "Internal Server Error"
		if status < http.StatusInternalServerError {
			message = err.Error()
		} else {
			log.ErrorContext(ctx, "request failed",
				logger.Error(err),
				logger.Method(req.Method),
				logger.Path(req.Path),
			)
		}

		return errorResponse(status, message), nil
	}
}

func errorResponse(status int, message string) *request.Response {
	return request.NewResponse().
		Status(status).
		Header(request.HeaderContentType, request.MediaTypeText).
		Body(message).
		Build()
}

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
