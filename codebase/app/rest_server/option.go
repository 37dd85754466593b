package restserver

import (
	"net/http"
	"strings"

	"github.com/golangid/weathertogo/wrapper"
)

type (
	option struct {
		rootHandler         http.HandlerFunc
		httpPort            uint16
		rootPath            string
		debugMode           bool
		bodyLimit           string
		jaegerMaxPacketSize int
	}

	// OptionFunc type
	OptionFunc func(*option)
)

var (
	// MiddlewareExcludeURLPath path never traced nor logged
	MiddlewareExcludeURLPath = map[string]struct{}{"/": {}, "/favicon.ico": {}}
)

func getDefaultOption() option {
	return option{
		httpPort:            1337,
		bodyLimit:           "1M",
		jaegerMaxPacketSize: 65000,
		rootHandler:         http.HandlerFunc(wrapper.HTTPHandlerDefaultRoot),
	}
}

// SetHTTPPort option func
func SetHTTPPort(port uint16) OptionFunc {
	return func(o *option) {
		o.httpPort = port
	}
}

// SetRootPath option func, all module handler mounted under this path
func SetRootPath(rootPath string) OptionFunc {
	return func(o *option) {
		rootPath = strings.Trim(rootPath, "/")
		if rootPath != "" {
			rootPath = "/" + rootPath
		}
		o.rootPath = rootPath
	}
}

// SetRootHTTPHandler option func
func SetRootHTTPHandler(rootHandler http.HandlerFunc) OptionFunc {
	return func(o *option) {
		o.rootHandler = rootHandler
	}
}

// SetDebugMode option func, access log only written in debug mode
func SetDebugMode(debugMode bool) OptionFunc {
	return func(o *option) {
		o.debugMode = debugMode
	}
}

// SetBodyLimit option func, request body above limit rejected with 413, format follow echo BodyLimit (e.g. 512K, 1M)
func SetBodyLimit(limit string) OptionFunc {
	return func(o *option) {
		o.bodyLimit = limit
	}
}

// SetJaegerMaxPacketSize option func
func SetJaegerMaxPacketSize(max int) OptionFunc {
	return func(o *option) {
		o.jaegerMaxPacketSize = max
	}
}
