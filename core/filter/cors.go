package filter

import (
	"context"
	"net/http"
	"strings"

	"github.com/gatekit/gatekit/core/handler"
	"github.com/gatekit/gatekit/core/request"
)

// CORSConfig declares the allow-lists injected by the CORS filter.
type CORSConfig struct {
	// AllowOrigins lists allowed origins. Defaults to "*".
	AllowOrigins []string

	// AllowMethods lists allowed HTTP methods. Defaults to
	// GET, POST, PUT, PATCH, DELETE, OPTIONS.
	AllowMethods []string

	// AllowHeaders lists allowed request headers. Defaults to
	// Content-Type and Authorization.
	AllowHeaders []string
}

// CORS returns the CORS filter function. CORS is opt-in per API, per path
// group, or per route, with the innermost scope winning; the matcher
// publishes the resolved flag as a request attribute. When enabled for the
// matched route, the filter injects the Access-Control-Allow-* headers
// computed from the declared allow-lists. OPTIONS preflight requests that
// would otherwise have no matching route receive a synthesized 204 response.
func CORS(cfg CORSConfig) handler.Filter {
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"*"}
	}
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{request.HeaderContentType, "Authorization"}
	}

	corsHeaders := request.Headers{
		request.HeaderAccessControlAllowOrigin:  strings.Join(cfg.AllowOrigins, ","),
		request.HeaderAccessControlAllowMethods: strings.Join(cfg.AllowMethods, ","),
		request.HeaderAccessControlAllowHeaders: strings.Join(cfg.AllowHeaders, ","),
	}

	return func(ctx context.Context, req *request.Request, next handler.Handler) (*request.Response, error) {
		enabled, routeMatched := req.Attribute(request.AttrRouteCORS).(bool)

		// Preflight requests for routes without an OPTIONS handler are
		// answered here instead of falling through to a 404.
		if req.Method == http.MethodOptions && !routeMatched {
			return request.NewResponse().
				Status(http.StatusNoContent).
				Headers(corsHeaders).
				Build(), nil
		}

		resp, err := next(ctx, req)
		if err != nil || !routeMatched || !enabled {
			return resp, err
		}
		return resp.WithHeaders(corsHeaders), nil
	}
}
