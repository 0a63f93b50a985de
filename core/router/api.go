package router

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gatekit/gatekit/core/filter"
	"github.com/gatekit/gatekit/core/handler"
	"github.com/gatekit/gatekit/core/httperr"
	"github.com/gatekit/gatekit/core/pathspec"
	"github.com/gatekit/gatekit/core/request"
)

// API is the compiled route table. It is immutable and safe for
// unsynchronized concurrent use.
type API struct {
	tree    *tree
	filters []*filter.Filter
	routes  []RouteInfo
	logger  *slog.Logger
}

// RouteInfo describes a registered route for introspection.
type RouteInfo struct {
	Method  string
	Pattern string
	Auth    string
	CORS    bool
	Static  bool
}

// Routes returns all registered routes in declaration order.
func (a *API) Routes() []RouteInfo {
	out := make([]RouteInfo, len(a.routes))
	copy(out, a.routes)
	return out
}

// Handle resolves the request to a handler, wraps it in every filter whose
// pattern matches the request path, and executes the composed chain.
//
// When no route matches (including a matching path without the request's
// method), the terminal handler raises a not-found error, so the standard
// pipeline still runs and produces the 404 response. The returned error is
// non-nil only when a filter outside the error-mapping filter fails.
func (a *API) Handle(ctx context.Context, req *request.Request) (*request.Response, error) {
	segments := pathspec.Split(req.Path)

	terminal, req := a.resolve(req, segments)
	composed := filter.Compose(a.filters, segments, terminal)
	return composed(ctx, req)
}

// resolve matches the request against the trie and returns the terminal
// handler together with the request enriched with bindings and route
// metadata attributes.
func (a *API) resolve(req *request.Request, segments []string) (handler.Handler, *request.Request) {
	m := a.tree.match(req.Method, segments)
	if m == nil {
		return notFoundHandler, req
	}

	if m.endpoint != nil {
		req = req.WithPathParams(m.params).WithAttributes(map[string]any{
			request.AttrRoutePattern: m.endpoint.pattern,
			request.AttrRouteAuth:    m.endpoint.auth,
			request.AttrRouteCORS:    m.endpoint.cors,
		})
		return m.endpoint.handler, req
	}

	req = req.WithPathParams(m.params).WithAttributes(map[string]any{
		request.AttrRoutePattern: m.static.pattern,
		request.AttrRouteAuth:    m.static.auth,
		request.AttrRouteCORS:    m.static.cors,
		request.AttrStaticPath:   strings.Join(m.remainder, "/"),
	})
	return m.static.handler, req
}

func notFoundHandler(ctx context.Context, req *request.Request) (*request.Response, error) {
	return nil, httperr.NotFoundf("no handler found for %s %s", req.Method, req.Path)
}
