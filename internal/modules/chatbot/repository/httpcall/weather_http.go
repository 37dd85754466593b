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

const sourceWeather = "WeatherHTTP"

// WeatherHTTP implementation
type WeatherHTTP struct {
	feedURL   string
	userAgent string
	httpReq   candiutils.HTTPRequest
}

// NewWeatherHTTP constructor
func NewWeatherHTTP(httpReq candiutils.HTTPRequest, feedURL, userAgent string) *WeatherHTTP {
	return &WeatherHTTP{
		feedURL:   feedURL,
		userAgent: userAgent,
		httpReq:   httpReq,
	}
}

// FetchObservations method
func (w *WeatherHTTP) FetchObservations(ctx context.Context) <-chan candishared.Result[[]domain.Observation] {
	output := make(chan candishared.Result[[]domain.Observation], 1)

	go func() {
		defer close(output)

		body, code, err := w.httpReq.Do(ctx, http.MethodGet, w.feedURL, nil, map[string]string{
			candihelper.HeaderUserAgent: w.userAgent,
		})
		if err := classifyResponseError(sourceWeather, code, err); err != nil {
			output <- candishared.Result[[]domain.Observation]{Error: err}
			return
		}

		var feed domain.WeatherFeed
		if err := json.Unmarshal(body, &feed); err != nil {
			output <- candishared.Result[[]domain.Observation]{Error: candishared.NewMalformedError(sourceWeather, err)}
			return
		}
		output <- candishared.Result[[]domain.Observation]{Data: feed.Observations.Data}
	}()

	return output
}
