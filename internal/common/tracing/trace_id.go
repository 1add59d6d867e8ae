// Package tracing stamps a per-pass trace id into the context so log lines
// from one check pass can be correlated.
package tracing

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

var traceIDCtxKey ctxKey

// WithTraceID attaches a fresh trace id unless the context already has one.
func WithTraceID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(traceIDCtxKey).(string); ok {
		return ctx
	}

	return context.WithValue(ctx, traceIDCtxKey, generateTraceID())
}

func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(traceIDCtxKey).(string)
	if !ok {
		return ""
	}

	return traceID
}

func generateTraceID() string {
	v, _ := uuid.NewV7()
	return v.String()
}
