package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golangid/weathertogo/candihelper"
	"github.com/golangid/weathertogo/codebase/factory"
	"github.com/golangid/weathertogo/codebase/interfaces"
	"github.com/golangid/weathertogo/logger"
)

// App service
type App struct {
	service factory.ServiceFactory
	servers []factory.AppServerFactory
}

// New service app
func New(service factory.ServiceFactory) *App {
	log.Printf("Starting %s service\n\n", candihelper.StringGreen(string(service.Name())))

	return &App{
		service: service,
		servers: service.GetApplications(),
	}
}

// Run start app, block until interrupt or terminate signal
func (a *App) Run() {
	if len(a.servers) == 0 {
		panic("No server running")
	}

	errServe := make(chan error)
	for _, server := range a.servers {
		go func(srv factory.AppServerFactory) {
			defer func() {
				if r := recover(); r != nil {
					errServe <- fmt.Errorf("%s server: %v", srv.Name(), r)
				}
			}()
			srv.Serve()
		}(server)
	}

	quitSignal := make(chan os.Signal, 1)
	signal.Notify(quitSignal, os.Interrupt, syscall.SIGTERM)

	select {
	case e := <-errServe:
		panic(e)
	case <-quitSignal:
		a.shutdown(quitSignal)
	}
}

// graceful shutdown all server, then release module resources so accepted webhook deliveries are drained
func (a *App) shutdown(forceShutdown chan os.Signal) {
	fmt.Println("\x1b[34;1mGracefully shutdown... (press Ctrl+C again to force)\x1b[0m")

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Shutdown(ctx)
	}()

	select {
	case <-done:
		log.Println("\x1b[32;1mSuccess shutdown all server & module\x1b[0m")
	case <-forceShutdown:
		log.Println("\x1b[31;1mForce shutdown server & module\x1b[0m")
		cancel()
	case <-ctx.Done():
		log.Println("\x1b[31;1mContext timeout\x1b[0m")
	}
}

// Shutdown stop all servers, then disconnect every module holding resources
func (a *App) Shutdown(ctx context.Context) {
	for _, server := range a.servers {
		server.Shutdown(ctx)
	}
	for _, m := range a.service.GetModules() {
		if closer, ok := m.(interfaces.Closer); ok {
			logger.LogIfError(closer.Disconnect(ctx))
		}
	}
}
