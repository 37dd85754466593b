package resthandler

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"github.com/golangid/weathertogo/api"
	"github.com/golangid/weathertogo/candiutils"
	"github.com/golangid/weathertogo/codebase/interfaces"
	"github.com/golangid/weathertogo/internal/modules/chatbot/domain"
	"github.com/golangid/weathertogo/internal/modules/chatbot/usecase"
	"github.com/golangid/weathertogo/logger"
	"github.com/golangid/weathertogo/tracer"
	"github.com/golangid/weathertogo/wrapper"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

const (
	hubModeSubscribe = "subscribe"
	eventReceived    = "EVENT_RECEIVED"
)

// RestHandler handler
type RestHandler struct {
	uc          usecase.ChatbotUsecase
	validator   interfaces.Validator
	queue       candiutils.WorkerPool[domain.WebhookJob]
	verifyToken string
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.ChatbotUsecase, validator interfaces.Validator, queue candiutils.WorkerPool[domain.WebhookJob], verifyToken string) *RestHandler {
	return &RestHandler{
		uc:          uc,
		validator:   validator,
		queue:       queue,
		verifyToken: verifyToken,
	}
}

// Mount handler with root "/"
func (h *RestHandler) Mount(root *echo.Group) {
	root.GET("/webhook", h.verifyWebhook)
	root.POST("/webhook", h.receiveWebhook)

	root.GET("/raining", h.raining)
	root.GET("/traffic", h.traffic)
}

func (h *RestHandler) verifyWebhook(c echo.Context) error {
	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")
	challenge := c.QueryParam("hub.challenge")

	if mode == hubModeSubscribe && h.verifyToken != "" &&
		subtle.ConstantTimeCompare([]byte(token), []byte(h.verifyToken)) == 1 {
		logger.LogI("webhook verified")
		return c.String(http.StatusOK, challenge)
	}

	logger.LogWf("webhook verification rejected, mode: %q", mode)
	return c.NoContent(http.StatusForbidden)
}

func (h *RestHandler) receiveWebhook(c echo.Context) error {
	trace := tracer.StartTrace(c.Request().Context(), "ChatbotDeliveryREST:ReceiveWebhook")
	defer trace.Finish()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		trace.SetError(err)
		return c.NoContent(http.StatusNotFound)
	}

	if err := h.validator.ValidateDocument(api.SchemaWebhookEvent, body); err != nil {
		trace.SetError(err)
		logger.LogWf("reject webhook body: %v", err)
		return c.NoContent(http.StatusNotFound)
	}

	var request domain.WebhookRequest
	if err := json.Unmarshal(body, &request); err != nil {
		trace.SetError(err)
		logger.LogWf("reject webhook body: %v", err)
		return c.NoContent(http.StatusNotFound)
	}
	if !request.IsPageSubscription() {
		logger.LogWf("reject webhook object %q", request.Object)
		return c.NoContent(http.StatusNotFound)
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	trace.SetTag("request_id", requestID)

	h.queue.AddJob(domain.WebhookJob{RequestID: requestID, Request: request})
	return c.String(http.StatusOK, eventReceived)
}

func (h *RestHandler) raining(c echo.Context) error {
	trace := tracer.StartTrace(c.Request().Context(), "ChatbotDeliveryREST:Raining")
	defer trace.Finish()

	state := h.uc.IsCurrentlyRaining(trace.Context())
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", state).JSON(c.Response())
}

func (h *RestHandler) traffic(c echo.Context) error {
	trace := tracer.StartTrace(c.Request().Context(), "ChatbotDeliveryREST:Traffic")
	defer trace.Finish()

	advisory := h.uc.LocalAdvisory(trace.Context(), domain.DiagnosticCoordinates)
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", advisory).JSON(c.Response())
}
