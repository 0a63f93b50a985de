// Package router implements the declarative route table, the trie-based
// route matcher, and the request dispatch pipeline.
//
// Routes and filters are declared on a Builder and compiled once into an
// immutable API. Construction is fail-fast: malformed patterns and route
// conflicts abort Build, there is no recovery path. After Build the trie,
// route table, and filter list are never mutated, so an API may serve any
// number of concurrent requests without locking.
//
// Matching descends the trie one path segment at a time. A fixed child
// always takes priority over a variable child; variable descent binds the
// variable name to the literal request segment. Static-file routes
// terminate descent by capturing every remaining segment as a relative
// asset key.
//
// Basic usage:
//
//	b := router.New()
//	b.Get("/hello/{name}", func(ctx context.Context, req *request.Request) (*request.Response, error) {
//		return req.Response().Body(map[string]string{
//			"message": "hello, " + req.PathParams.Get("name") + "!",
//		}).Build(), nil
//	})
//	b.Route("/admin", func(b *router.Builder) {
//		b.Filter(adminOnly)
//		b.Get("/stats", statsHandler)
//	})
//
//	api, err := b.Build()
//	if err != nil {
//		// fix the API definition and reassemble
//	}
package router
