package handler

import (
	"context"

	"github.com/gatekit/gatekit/core/request"
)

// Handler processes a request and produces a response. Errors are recovered
// by the error-mapping filter when one wraps the handler; otherwise they
// surface to the adapter.
type Handler func(ctx context.Context, req *request.Request) (*request.Response, error)

// Filter wraps a handler with cross-cutting behavior. The standard contract
// is to call next exactly once, though a filter may short-circuit (zero
// calls) or retry (multiple calls). A substituted request must be a derived
// copy; requests are never mutated in place.
type Filter func(ctx context.Context, req *request.Request, next Handler) (*request.Response, error)
