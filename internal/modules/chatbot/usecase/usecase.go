package usecase

import (
	"context"

	"github.com/golangid/weathertogo/internal/modules/chatbot/domain"
)

// ChatbotUsecase abstraction
type ChatbotUsecase interface {
	// ProcessWebhook route the first messaging event of every entry, entries are routed concurrently
	ProcessWebhook(ctx context.Context, request domain.WebhookRequest) error
	RouteEvent(ctx context.Context, event domain.MessagingEvent)

	ComposeForMessage(ctx context.Context, message domain.Message) domain.OutboundMessage
	ComposeForPostback(ctx context.Context, postback domain.Postback) domain.OutboundMessage

	// IsCurrentlyRaining never fail, any oracle failure give not raining
	IsCurrentlyRaining(ctx context.Context) domain.WeatherState
	// LocalAdvisory never fail, any oracle failure give normal traffic
	LocalAdvisory(ctx context.Context, coordinates domain.Coordinates) domain.TrafficAdvisory

	SendMessage(ctx context.Context, recipientID string, message domain.OutboundMessage) error
}
