package factory

import (
	"github.com/golangid/weathertogo/codebase/factory/types"
	"github.com/golangid/weathertogo/codebase/interfaces"
)

// ModuleFactory factory
type ModuleFactory interface {
	RESTHandler() interfaces.EchoRestHandler
	Name() types.Module
}
