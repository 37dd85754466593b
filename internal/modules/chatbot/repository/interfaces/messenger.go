package interfaces

import (
	"context"

	"github.com/golangid/weathertogo/internal/modules/chatbot/domain"
)

// Messenger abstraction of messaging platform send api
type Messenger interface {
	SendMessage(ctx context.Context, request domain.SendRequest) error
}
