// Package gateway composes configuration, logging, routing, and the HTTP
// server into a runnable application. It is the quickest way to serve a
// route table in a standalone process:
//
//	app, err := gateway.NewApp(func(b *router.Builder) {
//		b.Get("/hello/{name}", helloHandler)
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := app.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package gateway

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gatekit/gatekit/adapter/httpserver"
	"github.com/gatekit/gatekit/core/config"
	"github.com/gatekit/gatekit/core/logger"
	"github.com/gatekit/gatekit/core/router"
	"github.com/gatekit/gatekit/core/server"
)

// App bundles a compiled route table with a configured HTTP server.
type App struct {
	config Config
	api    *router.API
	server *server.Server
	logger *slog.Logger
}

// AppOption overrides a composed dependency.
type AppOption func(*App) error

// NewApp loads configuration from the environment, builds the routes
// declared by define, and wires the server around them.
func NewApp(define func(b *router.Builder), opts ...AppOption) (*App, error) {
	if define == nil {
		return nil, errors.New("route definition function cannot be nil")
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{config: cfg}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		if cfg.Env == "development" {
			app.logger = logger.New(logger.WithDevelopment(cfg.AppName))
		} else {
			app.logger = logger.New(logger.WithProduction(cfg.AppName))
		}
	}

	if app.api == nil {
		b := router.New(router.WithLogger(app.logger))
		define(b)
		api, err := b.Build()
		if err != nil {
			return nil, err
		}
		app.api = api
	}

	if app.server == nil {
		s, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	return app, nil
}

// WithLogger overrides the environment-derived logger.
func WithLogger(log *slog.Logger) AppOption {
	return func(app *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = log
		return nil
	}
}

// WithAPI installs a pre-built route table, bypassing the define function.
func WithAPI(api *router.API) AppOption {
	return func(app *App) error {
		if api == nil {
			return errors.New("api cannot be nil")
		}
		app.api = api
		return nil
	}
}

// WithServer overrides the config-derived server.
func WithServer(srv *server.Server) AppOption {
	return func(app *App) error {
		if srv == nil {
			return errors.New("server cannot be nil")
		}
		app.server = srv
		return nil
	}
}

// API returns the compiled route table, e.g. for an in-memory test client.
func (a *App) API() *router.API {
	return a.api
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run serves the application until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	adapterOpts := []httpserver.Option{}
	if a.config.BasePath != "" {
		adapterOpts = append(adapterOpts, httpserver.WithBasePath(a.config.BasePath))
	}
	if a.config.Stage != "" {
		adapterOpts = append(adapterOpts, httpserver.WithStage(a.config.Stage))
	}

	a.logger.InfoContext(ctx, "starting application",
		logger.Component("app"),
		logger.Stage(a.config.Stage),
		slog.String("addr", a.config.Server.Addr),
	)

	return a.server.Run(ctx, httpserver.New(a.api, adapterOpts...))()
}
