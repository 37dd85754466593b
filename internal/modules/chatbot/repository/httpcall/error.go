package httpcall

import (
	"net/http"

	"github.com/golangid/weathertogo/candishared"
)

// classifyResponseError map http call outcome into typed failure, nil only for 200 OK
func classifyResponseError(source string, code int, err error) error {
	switch {
	case code == 0 && err != nil:
		return candishared.NewNetworkError(source, err)
	case code != http.StatusOK:
		return candishared.NewUpstreamError(source, code)
	case err != nil:
		return candishared.NewNetworkError(source, err)
	}
	return nil
}
