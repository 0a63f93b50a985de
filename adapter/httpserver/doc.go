// Package httpserver adapts a compiled route table to net/http.
//
// The adapter translates each inbound http.Request into the canonical
// request value, runs the filter pipeline, and writes the resulting
// response back to the ResponseWriter. Binary responses produced by the
// content-encoding filter are decoded before writing, so clients receive
// raw bytes over HTTP even though the pipeline carries base64 text.
//
//	api := b.MustBuild()
//
//	h := httpserver.New(api,
//		httpserver.WithBasePath("/v2"),
//		httpserver.WithStage("prod"),
//	)
//	err := server.Run(ctx, ":8080", h)
package httpserver
