package filter_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/core/filter"
	"github.com/gatekit/gatekit/core/handler"
	"github.com/gatekit/gatekit/core/request"
)

func echoHandler(body string) handler.Handler {
	return func(ctx context.Context, req *request.Request) (*request.Response, error) {
		return request.NewResponse().Body(body).Build(), nil
	}
}

// appendFilter appends its marker to the response body on the way out.
func appendFilter(marker string) handler.Filter {
	return func(ctx context.Context, req *request.Request, next handler.Handler) (*request.Response, error) {
		resp, err := next(ctx, req)
		if err != nil {
			return nil, err
		}
		return resp.WithBody(resp.Body.(string) + marker), nil
	}
}

func TestFilterMatches(t *testing.T) {
	t.Parallel()

	noop := func(ctx context.Context, req *request.Request, next handler.Handler) (*request.Response, error) {
		return next(ctx, req)
	}

	t.Run("terminal wildcard matches zero or more trailing segments", func(t *testing.T) {
		t.Parallel()

		f, err := filter.New("/foo/*", noop)
		require.NoError(t, err)

		assert.True(t, f.Matches([]string{"foo"}))
		assert.True(t, f.Matches([]string{"foo", "bar"}))
		assert.True(t, f.Matches([]string{"foo", "bar", "baz"}))
		assert.False(t, f.Matches([]string{"bar"}))
		assert.False(t, f.Matches(nil))
	})

	t.Run("match-everything pattern", func(t *testing.T) {
		t.Parallel()

		f, err := filter.New("/*", noop)
		require.NoError(t, err)

		assert.True(t, f.Matches(nil))
		assert.True(t, f.Matches([]string{"foo"}))
		assert.True(t, f.Matches([]string{"foo", "bar"}))
	})

	t.Run("exact pattern requires exact segment count", func(t *testing.T) {
		t.Parallel()

		f, err := filter.New("/foo/{x}", noop)
		require.NoError(t, err)

		assert.True(t, f.Matches([]string{"foo", "bar"}))
		assert.True(t, f.Matches([]string{"foo", "anything"}))
		assert.False(t, f.Matches([]string{"foo"}))
		assert.False(t, f.Matches([]string{"foo", "bar", "baz"}))
		assert.False(t, f.Matches([]string{"other", "bar"}))
	})

	t.Run("variable segment matches any single non-empty segment", func(t *testing.T) {
		t.Parallel()

		f, err := filter.New("/{x}/bar", noop)
		require.NoError(t, err)

		assert.True(t, f.Matches([]string{"anything", "bar"}))
		assert.False(t, f.Matches([]string{"anything", "baz"}))
		assert.False(t, f.Matches([]string{"", "bar"}))
	})

	t.Run("variable segment rejects the empty segment of a trailing slash", func(t *testing.T) {
		t.Parallel()

		f, err := filter.New("/foo/{x}", noop)
		require.NoError(t, err)

		assert.False(t, f.Matches([]string{"foo", ""}))
	})
}

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("first declared filter is outermost", func(t *testing.T) {
		t.Parallel()

		f1, err := filter.New("/*", appendFilter("1"))
		require.NoError(t, err)
		f2, err := filter.New("/*", appendFilter("2"))
		require.NoError(t, err)

		composed := filter.Compose([]*filter.Filter{f1, f2}, nil, echoHandler("root"))

		resp, err := composed(context.Background(), request.New(http.MethodGet, "/"))
		require.NoError(t, err)

		// F2 appends before F1 on the way out because F1 returns last.
		assert.Equal(t, "root21", resp.Body)
	})

	t.Run("non-matching filters are skipped", func(t *testing.T) {
		t.Parallel()

		global, err := filter.New("/*", appendFilter("g"))
		require.NoError(t, err)
		scoped, err := filter.New("/admin/*", appendFilter("a"))
		require.NoError(t, err)

		composed := filter.Compose([]*filter.Filter{global, scoped}, []string{"public"}, echoHandler("root"))

		resp, err := composed(context.Background(), request.New(http.MethodGet, "/public"))
		require.NoError(t, err)
		assert.Equal(t, "rootg", resp.Body)
	})

	t.Run("filter substitutes a derived request", func(t *testing.T) {
		t.Parallel()

		var seen string
		terminal := func(ctx context.Context, req *request.Request) (*request.Response, error) {
			seen = req.Headers.Get("X-Injected")
			return request.NewResponse().Build(), nil
		}

		inject, err := filter.New("/*", func(ctx context.Context, req *request.Request, next handler.Handler) (*request.Response, error) {
			return next(ctx, req.WithHeader("X-Injected", "yes"))
		})
		require.NoError(t, err)

		orig := request.New(http.MethodGet, "/")
		_, err = filter.Compose([]*filter.Filter{inject}, nil, terminal)(context.Background(), orig)
		require.NoError(t, err)

		assert.Equal(t, "yes", seen)
		assert.Empty(t, orig.Headers.Get("X-Injected"), "caller's request must stay untouched")
	})

	t.Run("filter may short-circuit without calling next", func(t *testing.T) {
		t.Parallel()

		called := false
		terminal := func(ctx context.Context, req *request.Request) (*request.Response, error) {
			called = true
			return request.NewResponse().Build(), nil
		}

		short, err := filter.New("/*", func(ctx context.Context, req *request.Request, next handler.Handler) (*request.Response, error) {
			return request.NewResponse().Status(http.StatusForbidden).Build(), nil
		})
		require.NoError(t, err)

		resp, err := filter.Compose([]*filter.Filter{short}, nil, terminal)(context.Background(), request.New(http.MethodGet, "/"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.Status)
		assert.False(t, called)
	})
}
