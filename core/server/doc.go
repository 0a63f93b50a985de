// Package server provides an HTTP server wrapper with graceful shutdown,
// timeout configuration, and optional TLS.
//
// The server accepts any http.Handler; pair it with the httpserver adapter
// to serve a compiled route table:
//
//	api := b.MustBuild()
//
//	srv := server.New(":8080", server.WithLogger(log))
//	if err := srv.Start(ctx, httpserver.New(api)); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Configuration can come from the environment via NewFromConfig:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg)
//
// For coordinated lifecycles with errgroup, Run returns a function that
// starts the server and shuts it down when the group context is canceled:
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, httpserver.New(api)))
package server
