package factory

import (
	"context"

	"github.com/golangid/weathertogo/codebase/factory/types"
)

// AppServerFactory inbound server run by app, Serve block until Shutdown is called
type AppServerFactory interface {
	Serve()
	Shutdown(ctx context.Context)
	Name() types.Server
}
