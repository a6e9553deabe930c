// internal/pkg/logger/handlers.go
package logger

import (
	"context"
	"log/slog"
)

// contextKeys lists the request-scoped values attached to every record.
var contextKeys = []ContextKey{
	ContextKeyRequestID,
	ContextKeySessionID,
	ContextKeyClientIP,
	ContextKeyMethod,
	ContextKeyPath,
}

// ContextHandler extracts values from context and adds them to log records
type ContextHandler struct {
	handler slog.Handler
}

// NewContextHandler creates a handler that enriches logs with context values
func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{handler: handler}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	attrs := extractContextAttrs(ctx)
	if len(attrs) == 0 {
		return h.handler.Handle(ctx, record)
	}

	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(a slog.Attr) bool {
		newRecord.AddAttrs(a)
		return true
	})
	newRecord.AddAttrs(attrs...)

	return h.handler.Handle(ctx, newRecord)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

func extractContextAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	for _, key := range contextKeys {
		if value, ok := ctx.Value(key).(string); ok && value != "" {
			attrs = append(attrs, slog.String(string(key), value))
		}
	}
	return attrs
}
