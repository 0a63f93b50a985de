package filter

import (
	"context"
	"log/slog"
	"time"

	"github.com/gatekit/gatekit/core/handler"
	"github.com/gatekit/gatekit/core/logger"
	"github.com/gatekit/gatekit/core/request"
)

// Logging returns a filter that logs one line per request with method,
// path, status, and duration. Failures that escape the handler are logged
// at error level; placing this filter outside ErrorMapping captures mapped
// status codes instead.
func Logging(log *slog.Logger) handler.Filter {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx context.Context, req *request.Request, next handler.Handler) (*request.Response, error) {
		start := time.Now()

		resp, err := next(ctx, req)

		attrs := []slog.Attr{
			logger.Method(req.Method),
			logger.Path(req.Path),
			logger.Duration(time.Since(start)),
		}
		if id, ok := req.Attribute(request.AttrRequestID).(string); ok {
			attrs = append(attrs, logger.RequestID(id))
		}

		if err != nil {
			attrs = append(attrs, logger.Error(err))
			log.LogAttrs(ctx, slog.LevelError, "request failed", attrs...)
			return nil, err
		}

		attrs = append(attrs, logger.Status(resp.Status))
		log.LogAttrs(ctx, slog.LevelInfo, "request completed", attrs...)
		return resp, nil
	}
}
