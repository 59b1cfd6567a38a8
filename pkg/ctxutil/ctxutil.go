package ctxutil

import (
	"context"
)

type ctxKey string

const (
	requestIDKey     ctxKey = "request_id"
	searchSessionKey ctxKey = "search_session"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithSearchSession stores the client's search session ID in the context.
// An empty id leaves ctx unchanged.
func WithSearchSession(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, searchSessionKey, id)
}

// SearchSessionFromCtx extracts the search session ID from the context.
// Returns "" and false if absent.
func SearchSessionFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(searchSessionKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
