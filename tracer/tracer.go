package tracer

import (
	"context"
	"net/http"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// Tracer abstraction of a single span
type Tracer interface {
	Context() context.Context
	SetTag(key string, value interface{})
	SetError(err error)
	Log(key string, value interface{})
	InjectHTTPHeader(req *http.Request)
	Finish()
}

type openTracingSpan struct {
	ctx  context.Context
	span opentracing.Span
}

// StartTrace starting trace child span from parent span
func StartTrace(ctx context.Context, operationName string) Tracer {
	if ctx == nil {
		ctx = context.Background()
	}
	span, ctx := opentracing.StartSpanFromContext(ctx, operationName)
	return &openTracingSpan{ctx: ctx, span: span}
}

// StartTraceFromHeader starting root trace from inbound http header
func StartTraceFromHeader(ctx context.Context, operationName string, header http.Header) Tracer {
	globalTracer := opentracing.GlobalTracer()

	var span opentracing.Span
	if spanCtx, err := globalTracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(header)); err == nil {
		span = globalTracer.StartSpan(operationName, ext.RPCServerOption(spanCtx))
	} else {
		span = globalTracer.StartSpan(operationName)
	}
	return &openTracingSpan{ctx: opentracing.ContextWithSpan(ctx, span), span: span}
}

func (t *openTracingSpan) Context() context.Context {
	return t.ctx
}

func (t *openTracingSpan) SetTag(key string, value interface{}) {
	t.span.SetTag(key, value)
}

func (t *openTracingSpan) SetError(err error) {
	if err == nil {
		return
	}
	ext.Error.Set(t.span, true)
	t.span.LogKV("error.message", err.Error())
}

func (t *openTracingSpan) Log(key string, value interface{}) {
	t.span.LogKV(key, value)
}

func (t *openTracingSpan) InjectHTTPHeader(req *http.Request) {
	opentracing.GlobalTracer().Inject(t.span.Context(), opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header))
}

func (t *openTracingSpan) Finish() {
	t.span.Finish()
}
