package log

import "context"

type traceIDKey struct{}

// WithTraceID returns a context whose log lines carry the given trace id.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}
