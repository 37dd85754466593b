package config

import (
	"context"
	"fmt"
	"io"

	"github.com/golangid/weathertogo/candihelper"
	"github.com/golangid/weathertogo/config/env"
	"github.com/golangid/weathertogo/logger"
	"github.com/golangid/weathertogo/tracer"
	"go.uber.org/zap/zapcore"
)

// Config app
type Config struct {
	ServiceName string

	tracerCloser io.Closer
}

// Init app config, load environment then logger and tracer
func Init(serviceName string) (*Config, error) {
	if err := env.Load(serviceName); err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	if env.BaseEnv().DebugMode {
		level = zapcore.DebugLevel
	}
	logger.InitZap(logger.OptionSetLevel(level))
	logger.SetDebugMode(env.BaseEnv().DebugMode)

	cfg := &Config{ServiceName: serviceName}

	deferFunc := logger.LogWithDefer("Load tracer...")
	closer, err := tracer.InitOpenTracing(env.BaseEnv().JaegerTracingHost, serviceName,
		env.BaseEnv().JaegerMaxPacketSize, map[string]interface{}{
			"build_number":   env.BaseEnv().BuildNumber,
			"max_goroutines": env.BaseEnv().MaxGoroutines,
			"version":        candihelper.Version,
		})
	deferFunc()
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	cfg.tracerCloser = closer

	return cfg, nil
}

// Exit release all app resource
func (c *Config) Exit(ctx context.Context) {
	deferFunc := logger.LogWithDefer("Close tracer...")
	if c.tracerCloser != nil {
		logger.LogIfError(c.tracerCloser.Close())
	}
	deferFunc()
	logger.Sync()
}
