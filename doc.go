// Package gatekit is a request-routing and middleware-composition toolkit
// for HTTP-style APIs that run unchanged behind a standalone server, an
// AWS Lambda gateway, or an in-memory test client.
//
// # Package Organization
//
// Core framework packages:
//
//   - github.com/gatekit/gatekit/core/pathspec: path pattern parsing and validation
//   - github.com/gatekit/gatekit/core/request: immutable request/response values
//   - github.com/gatekit/gatekit/core/handler: handler and filter function contracts
//   - github.com/gatekit/gatekit/core/httperr: errors with HTTP status codes
//   - github.com/gatekit/gatekit/core/filter: path-scoped filters and the standard pipeline
//   - github.com/gatekit/gatekit/core/router: route table builder and trie matcher
//   - github.com/gatekit/gatekit/core/assets: static asset stores (fs.FS)
//   - github.com/gatekit/gatekit/core/config: environment configuration loading
//   - github.com/gatekit/gatekit/core/logger: slog factory and attribute helpers
//   - github.com/gatekit/gatekit/core/server: HTTP server with graceful shutdown
//
// Adapters:
//
//   - github.com/gatekit/gatekit/adapter/httpserver: net/http adapter
//   - github.com/gatekit/gatekit/adapter/lambda: AWS Lambda / API Gateway adapter
//   - github.com/gatekit/gatekit/adapter/testclient: in-memory test client
//
// Integrations:
//
//   - github.com/gatekit/gatekit/integration/assets/s3: S3-backed asset store
//
// Application composition:
//
//   - github.com/gatekit/gatekit/app/gateway: config + logger + router + server wiring
//
// # Quick Start
//
//	b := router.New()
//	b.Get("/hello/{name}", func(ctx context.Context, req *request.Request) (*request.Response, error) {
//		return req.Response().Body(map[string]string{
//			"message": "hello, " + req.PathParams.Get("name") + "!",
//		}).Build(), nil
//	})
//	api := b.MustBuild()
//
//	err := server.Run(ctx, ":8080", httpserver.New(api))
package gatekit
