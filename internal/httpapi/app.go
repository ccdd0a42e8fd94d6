package httpapi

import (
	"context"

	"github.com/kegliz/graphstate/internal/config"
	"github.com/kegliz/graphstate/internal/logger"
	"github.com/kegliz/graphstate/internal/server"
	"github.com/kegliz/graphstate/internal/server/router"
)

type (
	ServerOptions struct {
		C       *config.Config
		Version string
	}

	apiServer struct {
		logger  *logger.Logger
		router  *router.Router
		config  *config.Config
		version string
	}

	apiServerOptions struct {
		logger  *logger.Logger
		router  *router.Router
		config  *config.Config
		version string
	}
)

// newAPIServer creates a new apiServer and registers its routes.
func newAPIServer(options apiServerOptions) *apiServer {
	a := &apiServer{
		logger:  options.logger,
		router:  options.router,
		config:  options.config,
		version: options.version,
	}
	a.router.SetRoutes(a.routes())
	return a
}

// Listen implements server.Server.
func (a *apiServer) Listen(port int, localOnly bool) error {
	a.logger.Info().
		Int("port", port).
		Bool("localOnly", localOnly).
		Str("version", a.version).
		Msg("starting graphsim service")
	return a.router.Start(port, localOnly)
}

// Shutdown implements server.Server.
func (a *apiServer) Shutdown(ctx context.Context) error {
	return a.router.Shutdown(ctx)
}

// NewServer wires a logger, router, and route table into a server.Server
// ready to Listen.
func NewServer(options ServerOptions) (server.Server, error) {
	l, r := server.NewLoggerAndRouter(server.EngineOptions{
		Debug:           options.C.Log.Debug,
		CORSAllowOrigin: options.C.Server.CORSAllowOrigin,
	})

	app := newAPIServer(apiServerOptions{
		logger:  l,
		router:  r,
		config:  options.C,
		version: options.Version,
	})

	return app, nil
}
