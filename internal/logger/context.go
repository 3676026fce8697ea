package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	usernameKey  ctxKey = "username"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithUsername tags every log line produced from ctx with the session user.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

func UsernameFrom(ctx context.Context) string {
	name, _ := ctx.Value(usernameKey).(string)
	return name
}

// FromCtx returns the global logger with request_id and user attached when
// they are present in ctx.
func FromCtx(ctx context.Context) *zap.Logger {
	l := L()
	if id := RequestIDFrom(ctx); id != "" {
		l = l.With(zap.String("request_id", id))
	}
	if name := UsernameFrom(ctx); name != "" {
		l = l.With(zap.String("user", name))
	}
	return l
}
