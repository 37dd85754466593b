package restserver

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/golangid/weathertogo/logger"
	"github.com/golangid/weathertogo/tracer"
	"github.com/golangid/weathertogo/wrapper"
	"github.com/labstack/echo"
	"go.uber.org/zap/zapcore"
)

// tracerMiddleware for wrap from http inbound (request from messaging platform)
func (h *restServer) tracerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if _, skip := MiddlewareExcludeURLPath[req.URL.Path]; skip {
			return next(c)
		}

		trace := tracer.StartTraceFromHeader(req.Context(), fmt.Sprintf("%s %s", req.Method, req.URL.Path), req.Header)
		defer trace.Finish()

		httpDump, _ := httputil.DumpRequest(req, false)
		trace.SetTag("http.url", h.masker.Mask(req.URL.String()))
		trace.SetTag("http.method", req.Method)
		trace.SetTag("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
		trace.Log("http.request", h.masker.Mask(string(httpDump)))

		body, _ := io.ReadAll(req.Body)
		if len(body) < h.opt.jaegerMaxPacketSize { // limit request body size (if higher tracer cannot show root span)
			trace.Log("request.body", string(body))
		} else {
			trace.Log("request.body.size", len(body))
		}
		req.Body = io.NopCloser(bytes.NewBuffer(body)) // reuse body

		resWriter := wrapper.NewWrapHTTPResponseWriter(c.Response().Writer, h.opt.jaegerMaxPacketSize)
		c.Response().Writer = resWriter
		c.SetRequest(req.WithContext(trace.Context()))

		err := next(c)
		statusCode := c.Response().Status
		trace.SetTag("http.status_code", statusCode)
		if statusCode >= http.StatusBadRequest {
			trace.SetError(fmt.Errorf("resp.code:%d", statusCode))
		}

		if resWriter.Truncated() {
			trace.Log("response.body.size", resWriter.Size())
		} else {
			trace.Log("response.body", string(resWriter.Body()))
		}
		return err
	}
}

// EchoLoggerMiddleware access log middleware, secret query value masked
func EchoLoggerMiddleware(masker logger.Masker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()
			if _, skip := MiddlewareExcludeURLPath[req.URL.Path]; skip {
				return next(c)
			}

			start := time.Now()
			if err = next(c); err != nil {
				c.Error(err)
			}
			res := c.Response()

			fields := map[string]interface{}{
				"id":            res.Header().Get(echo.HeaderXRequestID),
				"remote_ip":     c.RealIP(),
				"method":        req.Method,
				"uri":           masker.Mask(req.RequestURI),
				"user_agent":    req.UserAgent(),
				"status":        res.Status,
				"latency_human": time.Since(start).String(),
				"bytes_out":     res.Size,
			}
			if err != nil {
				fields["error"] = err.Error()
			}
			logger.LogWithField(zapcore.InfoLevel, fields)
			return nil
		}
	}
}
