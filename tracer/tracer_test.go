package tracer

import (
	"context"
	"errors"
	"net/http"
	"testing"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartTrace(t *testing.T) {
	mt := mocktracer.New()
	opentracing.SetGlobalTracer(mt)
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	trace := StartTrace(context.Background(), "WeatherHTTP:FetchObservations")
	trace.SetTag("http.method", http.MethodGet)
	trace.SetError(errors.New("status code 503"))
	trace.SetError(nil)
	trace.Finish()

	spans := mt.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "WeatherHTTP:FetchObservations", spans[0].OperationName)
	assert.Equal(t, http.MethodGet, spans[0].Tag("http.method"))
	assert.Equal(t, true, spans[0].Tag("error"))
}

func TestStartTraceFromHeader(t *testing.T) {
	mt := mocktracer.New()
	opentracing.SetGlobalTracer(mt)
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	parent := StartTrace(context.Background(), "client")
	req, _ := http.NewRequest(http.MethodPost, "http://localhost/webhook", nil)
	parent.InjectHTTPHeader(req)
	parent.Finish()

	child := StartTraceFromHeader(context.Background(), "POST /webhook", req.Header)
	assert.NotNil(t, opentracing.SpanFromContext(child.Context()))
	child.Finish()

	spans := mt.FinishedSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[0].SpanContext.TraceID, spans[1].SpanContext.TraceID)
}

func TestInitOpenTracingWithoutAgent(t *testing.T) {
	closer, err := InitOpenTracing("", "weathertogo", 0, nil)
	assert.NoError(t, err)
	assert.NoError(t, closer.Close())
}
