package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatekit/gatekit/core/assets"
	"github.com/gatekit/gatekit/core/handler"
	"github.com/gatekit/gatekit/core/httperr"
	"github.com/gatekit/gatekit/core/request"
)

// serveStatic builds the terminal handler for a static-file route. The
// matcher publishes the captured path remainder as a request attribute; an
// empty remainder serves the configured index file, if any.
func serveStatic(store assets.Store, indexFile string) handler.Handler {
	return func(ctx context.Context, req *request.Request) (*request.Response, error) {
		key, _ := req.Attribute(request.AttrStaticPath).(string)
		if key == "" {
			if indexFile == "" {
				return nil, httperr.NotFoundf("no handler found for %s %s", req.Method, req.Path)
			}
			key = indexFile
		}

		asset, err := store.Open(ctx, key)
		if err != nil {
			if errors.Is(err, assets.ErrNotFound) {
				return nil, httperr.NotFoundf("no asset found for %s", req.Path)
			}
			return nil, fmt.Errorf("open static asset %q: %w", key, err)
		}

		return req.Response().
			Header(request.HeaderContentType, asset.ContentType).
			Body(asset.Content).
			Build(), nil
	}
}
