package httpcall

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/golangid/weathertogo/candishared"
	"github.com/golangid/weathertogo/candiutils"
	"github.com/golangid/weathertogo/internal/modules/chatbot/domain"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	weatherURL = "http://reg.bom.test/fwo/IDN60901/IDN60901.94768.json"
	trafficURL = "https://api.transport.test/v1/ttds/events"
	sendURL    = "https://graph.facebook.test/v2.6/me/messages"
)

func newHTTPRequest() candiutils.HTTPRequest {
	return candiutils.NewHTTPRequest(candiutils.HTTPRequestSetTimeout(time.Second))
}

func TestWeatherHTTP_FetchObservations(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	tests := []struct {
		name      string
		responder httpmock.Responder
		wantData  []domain.Observation
		wantKind  candishared.ErrorKind
	}{
		{
			name:      "Testcase #1: positive",
			responder: httpmock.NewStringResponder(http.StatusOK, `{"observations":{"data":[{"rain_trace":"0.6"},{"rain_trace":"0.4"}]}}`),
			wantData:  []domain.Observation{{RainTrace: 0.6}, {RainTrace: 0.4}},
		},
		{
			name:      "Testcase #2: upstream forbidden",
			responder: httpmock.NewStringResponder(http.StatusForbidden, `Forbidden`),
			wantKind:  candishared.ErrorKindUpstream,
		},
		{
			name:      "Testcase #3: network failure",
			responder: httpmock.NewErrorResponder(errors.New("no such host")),
			wantKind:  candishared.ErrorKindNetwork,
		},
		{
			name:      "Testcase #4: malformed body",
			responder: httpmock.NewStringResponder(http.StatusOK, `<html>`),
			wantKind:  candishared.ErrorKindMalformed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder(http.MethodGet, weatherURL, tt.responder)

			repo := NewWeatherHTTP(newHTTPRequest(), weatherURL, "weathertogo/1.0")
			res := <-repo.FetchObservations(context.Background())

			assert.Equal(t, tt.wantKind, candishared.ErrorKindOf(res.Error))
			assert.Equal(t, tt.wantData, res.Data)
			assert.Equal(t, 1, httpmock.GetTotalCallCount())
		})
	}
}

func TestWeatherHTTP_UserAgent(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, weatherURL, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "weathertogo/1.0", req.Header.Get("User-Agent"))
		return httpmock.NewStringResponse(http.StatusOK, `{"observations":{"data":[]}}`), nil
	})

	res := <-NewWeatherHTTP(newHTTPRequest(), weatherURL, "weathertogo/1.0").FetchObservations(context.Background())
	assert.NoError(t, res.Error)
	assert.Empty(t, res.Data)
}

func TestTrafficHTTP_FetchIncidents(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	t.Run("Testcase #1: positive with api key header", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodGet, trafficURL, func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "apikey key-123", req.Header.Get("Authorization"))
			return httpmock.NewStringResponse(http.StatusOK, `{"events":[{"id":1,"head":{"lat":-33.83,"lng":151.22}},{"id":2}]}`), nil
		})

		res := <-NewTrafficHTTP(newHTTPRequest(), trafficURL, "key-123", "weathertogo/1.0").FetchIncidents(context.Background())
		require.NoError(t, res.Error)
		assert.Equal(t, []domain.Incident{
			{ID: 1, Head: &domain.Location{Lat: -33.83, Lng: 151.22}},
			{ID: 2},
		}, res.Data)
	})

	t.Run("Testcase #2: upstream error", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodGet, trafficURL, httpmock.NewStringResponder(http.StatusUnauthorized, `{}`))

		res := <-NewTrafficHTTP(newHTTPRequest(), trafficURL, "wrong", "weathertogo/1.0").FetchIncidents(context.Background())
		assert.Equal(t, candishared.ErrorKindUpstream, candishared.ErrorKindOf(res.Error))
		assert.Equal(t, 1, httpmock.GetTotalCallCount())
	})

	t.Run("Testcase #3: context canceled", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodGet, trafficURL, func(req *http.Request) (*http.Response, error) {
			<-req.Context().Done()
			return nil, req.Context().Err()
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		res := <-NewTrafficHTTP(newHTTPRequest(), trafficURL, "key", "weathertogo/1.0").FetchIncidents(ctx)
		assert.Equal(t, candishared.ErrorKindNetwork, candishared.ErrorKindOf(res.Error))
	})
}

func TestMessengerHTTP_SendMessage(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	t.Run("Testcase #1: positive", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodPost, sendURL, func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "page-token", req.URL.Query().Get("access_token"))
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

			body, _ := io.ReadAll(req.Body)
			var got map[string]interface{}
			assert.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, map[string]interface{}{"id": "1254459154682919"}, got["recipient"])
			assert.Equal(t, map[string]interface{}{"text": "Thanks!"}, got["message"])
			return httpmock.NewStringResponse(http.StatusOK, `{"recipient_id":"1254459154682919","message_id":"m1"}`), nil
		})

		repo := NewMessengerHTTP(newHTTPRequest(), sendURL, "page-token")
		err := repo.SendMessage(context.Background(), domain.NewSendRequest("1254459154682919", domain.NewTextMessage("Thanks!")))
		assert.NoError(t, err)
		assert.Equal(t, 1, httpmock.GetTotalCallCount())
	})

	t.Run("Testcase #2: invalid token", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodPost, sendURL, httpmock.NewStringResponder(http.StatusBadRequest, `{"error":{"message":"Invalid OAuth access token."}}`))

		repo := NewMessengerHTTP(newHTTPRequest(), sendURL, "bad")
		err := repo.SendMessage(context.Background(), domain.NewSendRequest("1", domain.NewTextMessage("Thanks!")))
		assert.Equal(t, candishared.ErrorKindUpstream, candishared.ErrorKindOf(err))
		assert.Equal(t, 1, httpmock.GetTotalCallCount())
	})

	t.Run("Testcase #3: network failure never expose access token", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodPost, sendURL, httpmock.NewErrorResponder(errors.New("dial tcp 127.0.0.1:1: connect: connection refused")))

		repo := NewMessengerHTTP(newHTTPRequest(), sendURL, "SECRET-PAGE-TOKEN")
		err := repo.SendMessage(context.Background(), domain.NewSendRequest("1", domain.NewTextMessage("Thanks!")))
		require.Error(t, err)
		assert.Equal(t, candishared.ErrorKindNetwork, candishared.ErrorKindOf(err))
		assert.NotContains(t, err.Error(), "SECRET-PAGE-TOKEN")
		assert.Contains(t, err.Error(), "connection refused")
	})
}
