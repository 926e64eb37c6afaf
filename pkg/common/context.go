package common

import "context"

// ContextKey is the private key type for values this package stores on a
// request context
type ContextKey string

// ContextKeyRequestID holds the request correlation ID
const ContextKeyRequestID ContextKey = "requestID"

// WithRequestID attaches a correlation ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// GetRequestID reads the correlation ID, empty if absent
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}
