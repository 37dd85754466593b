package wrapper

import (
	"bytes"
	"net/http"
)

// WrapHTTPResponseWriter capture status code and body written to the client
type WrapHTTPResponseWriter struct {
	statusCode int
	size       int
	limit      int
	body       bytes.Buffer
	rw         http.ResponseWriter
}

// NewWrapHTTPResponseWriter wrap http response writer, only the first limit bytes of body are kept (zero mean unlimited)
func NewWrapHTTPResponseWriter(httpResponseWriter http.ResponseWriter, limit int) *WrapHTTPResponseWriter {
	return &WrapHTTPResponseWriter{statusCode: http.StatusOK, limit: limit, rw: httpResponseWriter}
}

// StatusCode written status, 200 if handler never call WriteHeader
func (w *WrapHTTPResponseWriter) StatusCode() int {
	return w.statusCode
}

// Body captured response body
func (w *WrapHTTPResponseWriter) Body() []byte {
	return w.body.Bytes()
}

// Size total bytes written to the client
func (w *WrapHTTPResponseWriter) Size() int {
	return w.size
}

// Truncated report captured body is shorter than what has been written
func (w *WrapHTTPResponseWriter) Truncated() bool {
	return w.size > w.body.Len()
}

// Header Satisfy the http.ResponseWriter interface
func (w *WrapHTTPResponseWriter) Header() http.Header {
	return w.rw.Header()
}

func (w *WrapHTTPResponseWriter) Write(data []byte) (int, error) {
	n, err := w.rw.Write(data)
	w.size += n

	captured := data[:n]
	if w.limit > 0 {
		captured = captured[:min(len(captured), max(w.limit-w.body.Len(), 0))]
	}
	w.body.Write(captured)
	return n, err
}

// WriteHeader method
func (w *WrapHTTPResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.rw.WriteHeader(statusCode)
}
