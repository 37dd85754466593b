package wrapper

import (
	"encoding/json"
	"net/http"

	"github.com/golangid/weathertogo/candihelper"
	"github.com/labstack/echo"
)

// HTTPResponse envelope of diagnostic and error responses
type HTTPResponse struct {
	Success   bool              `json:"success"`
	Code      int               `json:"code"`
	Message   string            `json:"message"`
	RequestID string            `json:"request_id,omitempty"`
	Data      interface{}       `json:"data,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// NewHTTPResponse build envelope, error params are collected into errors (plain error keyed "detail"),
// the last non error param become data
func NewHTTPResponse(code int, message string, params ...interface{}) *HTTPResponse {
	resp := &HTTPResponse{
		Success: code < http.StatusBadRequest,
		Code:    code,
		Message: message,
	}

	errs := candihelper.NewMultiError()
	for _, param := range params {
		switch val := param.(type) {
		case candihelper.MultiError:
			errs.Merge(val)
		case error:
			errs.Append("detail", val)
		default:
			resp.Data = param
		}
	}
	if errs.HasError() {
		resp.Errors = errs.ToMap()
	}
	return resp
}

// JSON write envelope as application/json, request id assigned by middleware is echoed back
func (resp *HTTPResponse) JSON(w http.ResponseWriter) error {
	if resp.RequestID == "" {
		resp.RequestID = w.Header().Get(echo.HeaderXRequestID)
	}
	w.Header().Set(candihelper.HeaderContentType, candihelper.HeaderMIMEApplicationJSON)
	w.WriteHeader(resp.Code)
	return json.NewEncoder(w).Encode(resp)
}
