package testclient

import (
	"context"
	"net/http"

	"github.com/gatekit/gatekit/core/request"
	"github.com/gatekit/gatekit/core/router"
)

// Client drives a compiled API in memory. Safe for concurrent use.
type Client struct {
	api  *router.API
	opts []request.Option
}

// New creates a client around the compiled API. The given options are
// applied to every request, before per-call options.
func New(api *router.API, opts ...request.Option) *Client {
	return &Client{api: api, opts: opts}
}

// Do builds a request from the options and runs it through the pipeline.
func (c *Client) Do(ctx context.Context, method, path string, opts ...request.Option) (*request.Response, error) {
	combined := make([]request.Option, 0, len(c.opts)+len(opts))
	combined = append(combined, c.opts...)
	combined = append(combined, opts...)
	return c.api.Handle(ctx, request.New(method, path, combined...))
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, opts ...request.Option) (*request.Response, error) {
	return c.Do(ctx, http.MethodGet, path, opts...)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, path string, opts ...request.Option) (*request.Response, error) {
	return c.Do(ctx, http.MethodPost, path, opts...)
}

// Put issues a PUT request.
func (c *Client) Put(ctx context.Context, path string, opts ...request.Option) (*request.Response, error) {
	return c.Do(ctx, http.MethodPut, path, opts...)
}

// Patch issues a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, opts ...request.Option) (*request.Response, error) {
	return c.Do(ctx, http.MethodPatch, path, opts...)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...request.Option) (*request.Response, error) {
	return c.Do(ctx, http.MethodDelete, path, opts...)
}

// Options issues an OPTIONS request, typically to observe CORS preflight
// behavior.
func (c *Client) Options(ctx context.Context, path string, opts ...request.Option) (*request.Response, error) {
	return c.Do(ctx, http.MethodOptions, path, opts...)
}
