package logger

import (
	"context"

	"go.uber.org/zap"
)

type scopeKey string

const (
	requestIDKey scopeKey = "request_id"
	runIDKey     scopeKey = "run_id"
)

// WithRequestID returns a context whose log lines carry the API request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request id stored by WithRequestID
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

// WithRunID returns a context whose log lines carry an audit run id
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// scopeFields extracts the scope values stored on ctx as zap fields
func scopeFields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	if id, ok := RequestIDFromContext(ctx); ok {
		fields = append(fields, zap.String(string(requestIDKey), id))
	}
	if id, ok := ctx.Value(runIDKey).(string); ok && id != "" {
		fields = append(fields, zap.String(string(runIDKey), id))
	}
	return fields
}
