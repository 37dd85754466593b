package candishared

import "context"

// ContextKey represent Key of all context
type ContextKey string

const (
	// ContextKeyRequestID context key
	ContextKeyRequestID ContextKey = "requestID"
)

// SetToContext will set context with specific key
func SetToContext(ctx context.Context, key ContextKey, value interface{}) context.Context {
	return context.WithValue(ctx, key, value)
}

// GetValueFromContext will get context with specific key
func GetValueFromContext(ctx context.Context, key ContextKey) interface{} {
	return ctx.Value(key)
}

// ParseRequestIDFromContext get request id of inbound webhook delivery, empty if not set
func ParseRequestIDFromContext(ctx context.Context) string {
	requestID, _ := GetValueFromContext(ctx, ContextKeyRequestID).(string)
	return requestID
}
