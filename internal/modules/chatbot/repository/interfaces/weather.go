package interfaces

import (
	"context"

	"github.com/golangid/weathertogo/candishared"
	"github.com/golangid/weathertogo/internal/modules/chatbot/domain"
)

// Weather abstraction of observation station feed
type Weather interface {
	// FetchObservations one GET per call, samples newest first
	FetchObservations(ctx context.Context) <-chan candishared.Result[[]domain.Observation]
}
