package weathertogo

import (
	restserver "github.com/golangid/weathertogo/codebase/app/rest_server"
	"github.com/golangid/weathertogo/codebase/factory"
	"github.com/golangid/weathertogo/codebase/factory/types"
	"github.com/golangid/weathertogo/config"
	"github.com/golangid/weathertogo/config/env"
	"github.com/golangid/weathertogo/internal/modules/chatbot"
	"github.com/golangid/weathertogo/validator"
)

// Service model
type Service struct {
	cfg          *config.Config
	applications []factory.AppServerFactory
	modules      []factory.ModuleFactory
	name         types.Service
}

// NewService in this service
func NewService(cfg *config.Config) (factory.ServiceFactory, error) {
	v, err := validator.NewValidator()
	if err != nil {
		return nil, err
	}

	modules := []factory.ModuleFactory{
		chatbot.NewModule(env.BaseEnv(), v),
	}

	s := &Service{
		cfg:     cfg,
		modules: modules,
		name:    types.Service(cfg.ServiceName),
	}

	s.applications = []factory.AppServerFactory{
		restserver.NewServer(s,
			restserver.SetHTTPPort(env.BaseEnv().HTTPPort),
			restserver.SetDebugMode(env.BaseEnv().DebugMode),
			restserver.SetBodyLimit(env.BaseEnv().HTTPBodyLimit),
			restserver.SetJaegerMaxPacketSize(env.BaseEnv().JaegerMaxPacketSize),
		),
	}

	return s, nil
}

// GetConfig method
func (s *Service) GetConfig() *config.Config {
	return s.cfg
}

// GetApplications method
func (s *Service) GetApplications() []factory.AppServerFactory {
	return s.applications
}

// GetModules method
func (s *Service) GetModules() []factory.ModuleFactory {
	return s.modules
}

// Name method
func (s *Service) Name() types.Service {
	return s.name
}
