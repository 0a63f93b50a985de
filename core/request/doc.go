// Package request defines the canonical request/response value model shared
// by the route matcher, filters, and transport adapters.
//
// Request and Response are immutable values. Derived copies are produced
// with copy-with-overrides operations (WithBody, WithHeader, ...) so that a
// filter can hand a modified request to the next handler in the chain
// without affecting the caller's copy. Filters at different chain depths may
// therefore hold references to different versions within one call stack.
//
// Header and parameter containers are case-sensitive string-to-string maps
// with a later-write-wins merge rule.
//
// Basic usage inside a handler:
//
//	func hello(ctx context.Context, req *request.Request) (*request.Response, error) {
//		name := req.PathParams.Get("name")
//		return req.Response().Body(map[string]string{
//			"message": "hello, " + name + "!",
//		}).Build(), nil
//	}
package request
