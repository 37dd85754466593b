package wrapper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func TestCustomHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name: "Testcase #1: Not found", err: echo.ErrNotFound,
			wantCode: http.StatusNotFound, wantMessage: `Resource \"GET /testing\" not found`,
		},
		{
			name: "Testcase #2: Method not allowed", err: echo.ErrMethodNotAllowed,
			wantCode: http.StatusMethodNotAllowed, wantMessage: "Method Not Allowed",
		},
		{
			name: "Testcase #3: Unknown error", err: errors.New("boom"),
			wantCode: http.StatusInternalServerError, wantMessage: "boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/testing", nil)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			CustomHTTPErrorHandler(tt.err, c)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}
