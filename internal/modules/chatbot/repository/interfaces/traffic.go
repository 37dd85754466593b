package interfaces

import (
	"context"

	"github.com/golangid/weathertogo/candishared"
	"github.com/golangid/weathertogo/internal/modules/chatbot/domain"
)

// Traffic abstraction of incident feed
type Traffic interface {
	FetchIncidents(ctx context.Context) <-chan candishared.Result[[]domain.Incident]
}
