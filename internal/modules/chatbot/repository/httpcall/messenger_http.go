package httpcall

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/golangid/weathertogo/candihelper"
	"github.com/golangid/weathertogo/candiutils"
	"github.com/golangid/weathertogo/internal/modules/chatbot/domain"
)

const sourceMessenger = "MessengerHTTP"

// MessengerHTTP implementation of send api
type MessengerHTTP struct {
	sendURL     string
	accessToken string
	httpReq     candiutils.HTTPRequest
}

// NewMessengerHTTP constructor
func NewMessengerHTTP(httpReq candiutils.HTTPRequest, sendURL, accessToken string) *MessengerHTTP {
	return &MessengerHTTP{
		sendURL:     sendURL,
		accessToken: accessToken,
		httpReq:     httpReq,
	}
}

// SendMessage post request with access token as query credential
func (m *MessengerHTTP) SendMessage(ctx context.Context, request domain.SendRequest) error {
	u, err := url.Parse(m.sendURL)
	if err != nil {
		return err
	}
	query := u.Query()
	query.Set("access_token", m.accessToken)
	u.RawQuery = query.Encode()

	payload, err := json.Marshal(request)
	if err != nil {
		return err
	}

	_, code, err := m.httpReq.Do(ctx, http.MethodPost, u.String(), payload, map[string]string{
		candihelper.HeaderContentType: candihelper.HeaderMIMEApplicationJSON,
	})
	return classifyResponseError(sourceMessenger, code, err)
}
