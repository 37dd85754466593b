package httpcall

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/golangid/weathertogo/candihelper"
	"github.com/golangid/weathertogo/candishared"
	"github.com/golangid/weathertogo/candiutils"
	"github.com/golangid/weathertogo/internal/modules/chatbot/domain"
)

const sourceTraffic = "TrafficHTTP"

// TrafficHTTP implementation
type TrafficHTTP struct {
	feedURL   string
	apiKey    string
	userAgent string
	httpReq   candiutils.HTTPRequest
}

// NewTrafficHTTP constructor
func NewTrafficHTTP(httpReq candiutils.HTTPRequest, feedURL, apiKey, userAgent string) *TrafficHTTP {
	return &TrafficHTTP{
		feedURL:   feedURL,
		apiKey:    apiKey,
		userAgent: userAgent,
		httpReq:   httpReq,
	}
}

// FetchIncidents method
func (t *TrafficHTTP) FetchIncidents(ctx context.Context) <-chan candishared.Result[[]domain.Incident] {
	output := make(chan candishared.Result[[]domain.Incident], 1)

	go func() {
		defer close(output)

		body, code, err := t.httpReq.Do(ctx, http.MethodGet, t.feedURL, nil, map[string]string{
			candihelper.HeaderAuthorization: "apikey " + t.apiKey,
			candihelper.HeaderUserAgent:     t.userAgent,
		})
		if err := classifyResponseError(sourceTraffic, code, err); err != nil {
			output <- candishared.Result[[]domain.Incident]{Error: err}
			return
		}

		var feed domain.TrafficFeed
		if err := json.Unmarshal(body, &feed); err != nil {
			output <- candishared.Result[[]domain.Incident]{Error: candishared.NewMalformedError(sourceTraffic, err)}
			return
		}
		output <- candishared.Result[[]domain.Incident]{Data: feed.Events}
	}()

	return output
}
