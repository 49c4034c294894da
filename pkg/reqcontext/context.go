package reqcontext

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var (
	keySessionID KeyContext = "session_id"
	keyRequestID KeyContext = "request_id"
)

// WithSessionID stores the caller's session ID on the context
func WithSessionID(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, keySessionID, sessionID)
}

// GetSessionID returns the session ID stored on the context
func GetSessionID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keySessionID).(uuid.UUID)
	return id, ok
}

// WithRequestID stores the request ID on the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetRequestID returns the request ID stored on the context
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)
	return id
}

// Fields returns zap fields describing the request carried by ctx
func Fields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 2)
	if id, ok := GetSessionID(ctx); ok {
		fields = append(fields, zap.String("session_id", id.String()))
	}
	if rid := GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	return fields
}
