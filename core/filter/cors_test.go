package filter_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/core/filter"
	"github.com/gatekit/gatekit/core/request"
)

func TestCORS(t *testing.T) {
	t.Parallel()

	okHandler := func(ctx context.Context, req *request.Request) (*request.Response, error) {
		return req.Response().Body("ok").Build(), nil
	}

	t.Run("injects headers on enabled routes", func(t *testing.T) {
		t.Parallel()

		fn := filter.CORS(filter.CORSConfig{AllowOrigins: []string{"https://app.example.com"}})
		req := request.New(http.MethodGet, "/widgets").WithAttribute(request.AttrRouteCORS, true)

		resp, err := fn(context.Background(), req, okHandler)
		require.NoError(t, err)

		assert.Equal(t, "https://app.example.com", resp.Headers.Get(request.HeaderAccessControlAllowOrigin))
		assert.NotEmpty(t, resp.Headers.Get(request.HeaderAccessControlAllowMethods))
		assert.NotEmpty(t, resp.Headers.Get(request.HeaderAccessControlAllowHeaders))
	})

	t.Run("leaves disabled routes alone", func(t *testing.T) {
		t.Parallel()

		fn := filter.CORS(filter.CORSConfig{})
		req := request.New(http.MethodGet, "/widgets").WithAttribute(request.AttrRouteCORS, false)

		resp, err := fn(context.Background(), req, okHandler)
		require.NoError(t, err)

		assert.Empty(t, resp.Headers.Get(request.HeaderAccessControlAllowOrigin))
	})

	t.Run("synthesizes preflight response when no route matched", func(t *testing.T) {
		t.Parallel()

		fn := filter.CORS(filter.CORSConfig{})
		called := false
		next := func(ctx context.Context, req *request.Request) (*request.Response, error) {
			called = true
			return nil, nil
		}

		resp, err := fn(context.Background(), request.New(http.MethodOptions, "/widgets"), next)
		require.NoError(t, err)

		assert.False(t, called, "preflight must not reach the not-found handler")
		assert.Equal(t, http.StatusNoContent, resp.Status)
		assert.Equal(t, "*", resp.Headers.Get(request.HeaderAccessControlAllowOrigin))
	})

	t.Run("explicit OPTIONS route takes precedence over synthesis", func(t *testing.T) {
		t.Parallel()

		fn := filter.CORS(filter.CORSConfig{})
		req := request.New(http.MethodOptions, "/widgets").WithAttribute(request.AttrRouteCORS, true)

		resp, err := fn(context.Background(), req, okHandler)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, "ok", resp.Body)
		assert.Equal(t, "*", resp.Headers.Get(request.HeaderAccessControlAllowOrigin))
	})

	t.Run("defaults cover common methods and headers", func(t *testing.T) {
		t.Parallel()

		fn := filter.CORS(filter.CORSConfig{})
		req := request.New(http.MethodGet, "/").WithAttribute(request.AttrRouteCORS, true)

		resp, err := fn(context.Background(), req, okHandler)
		require.NoError(t, err)

		assert.Contains(t, resp.Headers.Get(request.HeaderAccessControlAllowMethods), http.MethodGet)
		assert.Contains(t, resp.Headers.Get(request.HeaderAccessControlAllowHeaders), request.HeaderContentType)
	})
}
