package factory

import (
	"github.com/golangid/weathertogo/codebase/factory/types"
)

// ServiceFactory factory
type ServiceFactory interface {
	GetApplications() []AppServerFactory
	GetModules() []ModuleFactory
	Name() types.Service
}
