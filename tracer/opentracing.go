package tracer

import (
	"io"
	"runtime"
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	config "github.com/uber/jaeger-client-go/config"
)

type noopCloser struct{}

func (noopCloser) Close() error { return nil }

// InitOpenTracing with jaeger agent and service name, set as global tracer.
// Without agent host the global noop tracer stays active.
func InitOpenTracing(agentHost, serviceName string, maxPacketSize int, tags map[string]interface{}) (io.Closer, error) {
	if agentHost == "" {
		return noopCloser{}, nil
	}

	cfg := &config.Configuration{
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &config.ReporterConfig{
			LogSpans:            true,
			BufferFlushInterval: 1 * time.Second,
			LocalAgentHostPort:  agentHost,
		},
		ServiceName: serviceName,
		Tags: []opentracing.Tag{
			{Key: "num_cpu", Value: runtime.NumCPU()},
			{Key: "go_version", Value: runtime.Version()},
		},
	}
	for k, v := range tags {
		cfg.Tags = append(cfg.Tags, opentracing.Tag{Key: k, Value: v})
	}

	var opts []config.Option
	if maxPacketSize > 0 {
		opts = append(opts, config.MaxTagValueLength(maxPacketSize))
	}
	tracer, closer, err := cfg.NewTracer(opts...)
	if err != nil {
		return nil, err
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}
