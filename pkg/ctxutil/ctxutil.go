package ctxutil

import (
	"context"

	"github.com/alarino/alarino-backend/internal/domain"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	requesterKey ctxKey = "requester"
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

// WithRequester stores the requester metadata in the context.
func WithRequester(ctx context.Context, meta domain.RequesterMeta) context.Context {
	return context.WithValue(ctx, requesterKey, meta)
}

// RequesterFromCtx extracts the requester metadata from the context.
// Returns a zero value if absent or of the wrong type.
func RequesterFromCtx(ctx context.Context) domain.RequesterMeta {
	meta, _ := ctx.Value(requesterKey).(domain.RequesterMeta)
	return meta
}
