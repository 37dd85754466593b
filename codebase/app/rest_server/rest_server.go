package restserver

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/golangid/weathertogo/codebase/factory"
	"github.com/golangid/weathertogo/codebase/factory/types"
	"github.com/golangid/weathertogo/logger"
	"github.com/golangid/weathertogo/wrapper"
	"github.com/google/uuid"
	"github.com/labstack/echo"
	echomiddleware "github.com/labstack/echo/middleware"
)

type restServer struct {
	opt          option
	serverEngine *echo.Echo
	masker       logger.Masker
}

// NewServer create new REST server
func NewServer(service factory.ServiceFactory, opts ...OptionFunc) factory.AppServerFactory {
	server := &restServer{
		serverEngine: echo.New(),
		opt:          getDefaultOption(),
		masker:       logger.NewMasker(),
	}
	for _, opt := range opts {
		opt(&server.opt)
	}

	server.serverEngine.HideBanner = true
	server.serverEngine.HTTPErrorHandler = wrapper.CustomHTTPErrorHandler
	server.serverEngine.Use(
		echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}),
		echomiddleware.BodyLimit(server.opt.bodyLimit),
		server.tracerMiddleware,
	)
	if server.opt.debugMode {
		server.serverEngine.Use(EchoLoggerMiddleware(server.masker))
	}

	server.serverEngine.GET("/", echo.WrapHandler(server.opt.rootHandler))

	rootPath := server.serverEngine.Group(server.opt.rootPath)
	for _, m := range service.GetModules() {
		if h := m.RESTHandler(); h != nil {
			h.Mount(rootPath)
		}
	}

	for _, route := range server.serverEngine.Routes() {
		if _, skip := MiddlewareExcludeURLPath[route.Path]; !skip {
			logger.LogGreen(fmt.Sprintf("[REST-ROUTE] %-6s %-30s --> %s", route.Method, route.Path, route.Name))
		}
	}

	fmt.Printf("\x1b[34;1m⇨ HTTP server run at port [::]:%d\x1b[0m\n\n", server.opt.httpPort)
	return server
}

func (s *restServer) Serve() {
	if err := s.serverEngine.Start(fmt.Sprintf(":%d", s.opt.httpPort)); err != nil && err != http.ErrServerClosed {
		log.Panicf("REST Server: Unexpected Error: %v", err)
	}
}

func (s *restServer) Shutdown(ctx context.Context) {
	defer log.Println("\x1b[33;1mStopping HTTP server:\x1b[0m \x1b[32;1mSUCCESS\x1b[0m")

	if err := s.serverEngine.Shutdown(ctx); err != nil {
		logger.LogE(err.Error())
	}
}

func (s *restServer) Name() types.Server {
	return types.REST
}
