package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is private so keys never collide with other packages.
type contextKey string

const (
	requestIDKey    contextKey = "request_id"
	userIDKey       contextKey = "user_id"
	universityIDKey contextKey = "university_id"
	loggerKey       contextKey = "logger"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetRequestID returns "" outside an HTTP request (worker, consumer).
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

func GetUserID(ctx context.Context) string {
	if uid, ok := ctx.Value(userIDKey).(string); ok {
		return uid
	}
	return ""
}

func WithUniversityID(ctx context.Context, universityID string) context.Context {
	return context.WithValue(ctx, universityIDKey, universityID)
}

func GetUniversityID(ctx context.Context) string {
	if id, ok := ctx.Value(universityIDKey).(string); ok {
		return id
	}
	return ""
}

// WithLogger stores a request-scoped logger, usually already decorated with
// request and tenant fields.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger never returns nil: the scoped logger, else defaultLogger, else a
// no-op logger.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}
	return zap.NewNop()
}
