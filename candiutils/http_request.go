package candiutils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"
	"github.com/golangid/weathertogo/logger"
	"github.com/golangid/weathertogo/tracer"
)

type (
	// HTTPRequest interface
	HTTPRequest interface {
		Do(ctx context.Context, method, url string, reqBody []byte, headers map[string]string) (respBody []byte, respCode int, err error)
	}

	httpRequestImpl struct {
		retries                int
		sleepBetweenRetry      time.Duration
		httpErrorCodeThreshold int
		timeout                time.Duration
		client                 *httpclient.Client
		masker                 logger.Masker
	}

	// HTTPRequestOption func type
	HTTPRequestOption func(*httpRequestImpl)
)

// HTTPRequestSetRetries option func, zero mean single attempt without retry
func HTTPRequestSetRetries(retries int) HTTPRequestOption {
	return func(h *httpRequestImpl) {
		h.retries = retries
	}
}

// HTTPRequestSetSleepBetweenRetry option func
func HTTPRequestSetSleepBetweenRetry(sleepBetweenRetry time.Duration) HTTPRequestOption {
	return func(h *httpRequestImpl) {
		h.sleepBetweenRetry = sleepBetweenRetry
	}
}

// HTTPRequestSetHTTPErrorCodeThreshold option func, response code >= threshold returned as error
func HTTPRequestSetHTTPErrorCodeThreshold(httpErrorCodeThreshold int) HTTPRequestOption {
	return func(h *httpRequestImpl) {
		h.httpErrorCodeThreshold = httpErrorCodeThreshold
	}
}

// HTTPRequestSetTimeout option func
func HTTPRequestSetTimeout(timeout time.Duration) HTTPRequestOption {
	return func(h *httpRequestImpl) {
		h.timeout = timeout
	}
}

// HTTPRequestSetMasker option func, mask secret in traced url, body and returned transport error
func HTTPRequestSetMasker(masker logger.Masker) HTTPRequestOption {
	return func(h *httpRequestImpl) {
		h.masker = masker
	}
}

// NewHTTPRequest function
// Request's Constructor
// Returns : HTTPRequest
func NewHTTPRequest(opts ...HTTPRequestOption) HTTPRequest {
	httpReq := &httpRequestImpl{
		sleepBetweenRetry:      500 * time.Millisecond,
		httpErrorCodeThreshold: http.StatusBadRequest,
		timeout:                10 * time.Second,
		masker:                 logger.NewMasker(),
	}
	for _, opt := range opts {
		opt(httpReq)
	}

	// heimdall sleeps after a failed attempt even when it is the last one
	retrier := heimdall.NewNoRetrier()
	if httpReq.retries > 0 {
		// define a maximum jitter interval
		maximumJitterInterval := 5 * time.Millisecond

		// create a backoff
		backoff := heimdall.NewConstantBackoff(httpReq.sleepBetweenRetry, maximumJitterInterval)

		// create a new retry mechanism with the backoff
		retrier = heimdall.NewRetrier(backoff)
	}

	httpReq.client = httpclient.NewClient(
		httpclient.WithHTTPTimeout(httpReq.timeout),
		httpclient.WithRetrier(retrier),
		httpclient.WithRetryCount(httpReq.retries),
	)
	return httpReq
}

// Do function, for http client call. respCode is zero when request never got a response
func (request *httpRequestImpl) Do(ctx context.Context, method, url string, requestBody []byte, headers map[string]string) (respBody []byte, respCode int, err error) {
	var body io.Reader
	if requestBody != nil {
		body = bytes.NewReader(requestBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, 0, err
	}

	trace := tracer.StartTrace(ctx, fmt.Sprintf("HTTP Request: %s %s%s", method, req.URL.Host, req.URL.Path))
	defer func() {
		trace.SetError(err)
		trace.Finish()
	}()

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	trace.InjectHTTPHeader(req)
	trace.SetTag("http.method", req.Method)
	trace.SetTag("http.url", request.masker.Mask(req.URL.String()))
	if requestBody != nil {
		trace.Log("request.body", string(requestBody))
	}

	resp, err := request.client.Do(req)
	if err != nil {
		// transport error text carry the full url, query credential included
		return nil, 0, &maskedError{msg: request.masker.Mask(err.Error()), err: err}
	}
	defer resp.Body.Close()

	respBody, err = io.ReadAll(resp.Body)
	trace.SetTag("response.code", resp.StatusCode)
	trace.Log("response.body", string(respBody))
	if err != nil {
		return nil, resp.StatusCode, err
	}

	if resp.StatusCode >= request.httpErrorCodeThreshold {
		err = fmt.Errorf("http status %s", resp.Status)
	}
	return respBody, resp.StatusCode, err
}

type maskedError struct {
	msg string
	err error
}

func (e *maskedError) Error() string { return e.msg }

func (e *maskedError) Unwrap() error { return e.err }
