package filter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gatekit/gatekit/core/handler"
	"github.com/gatekit/gatekit/core/request"
)

// RequestIDConfig configures the request-id filter.
type RequestIDConfig struct {
	// Generator creates new request IDs (default: UUID v4).
	Generator func() string

	// HeaderName is the header carrying the ID (default: X-Request-Id).
	HeaderName string

	// UseExisting reuses an ID supplied by the caller when present.
	UseExisting bool
}

// RequestID returns a filter that assigns a unique identifier to each
// request for tracing and logging. The ID is published as a request
// attribute and echoed on the response.
func RequestID() handler.Filter {
	return RequestIDWithConfig(RequestIDConfig{UseExisting: true})
}

// RequestIDWithConfig returns a request-id filter with custom configuration.
func RequestIDWithConfig(cfg RequestIDConfig) handler.Filter {
	if cfg.HeaderName == "" {
		cfg.HeaderName = request.HeaderRequestID
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(ctx context.Context, req *request.Request, next handler.Handler) (*request.Response, error) {
		var id string
		if cfg.UseExisting {
			id = req.Headers.Get(cfg.HeaderName)
		}
		if id == "" {
			id = cfg.Generator()
		}

		resp, err := next(ctx, req.WithAttribute(request.AttrRequestID, id))
		if err != nil {
			return nil, err
		}
		return resp.WithHeader(cfg.HeaderName, id), nil
	}
}
