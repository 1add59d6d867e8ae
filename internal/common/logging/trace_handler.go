package logging

import (
	"context"
	"log/slog"

	"github.com/seantis/is-online/internal/common/tracing"
)

var _ slog.Handler = (*TraceHandler)(nil)

// TraceHandler decorates another handler with the trace id from context.
type TraceHandler struct {
	w slog.Handler
}

func NewTraceHandler(handler slog.Handler) *TraceHandler {
	return &TraceHandler{w: handler}
}

func (h *TraceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.w.Enabled(ctx, level)
}

func (h *TraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if traceID := tracing.GetTraceID(ctx); traceID != "" {
		r.Add(slog.String("trace_id", traceID))
	}

	return h.w.Handle(ctx, r)
}

func (h *TraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceHandler{w: h.w.WithAttrs(attrs)}
}

func (h *TraceHandler) WithGroup(name string) slog.Handler {
	return &TraceHandler{w: h.w.WithGroup(name)}
}
