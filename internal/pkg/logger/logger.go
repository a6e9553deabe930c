// internal/pkg/logger/logger.go
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// ContextKey represents keys for context values
type ContextKey string

const (
	ContextKeyRequestID ContextKey = "request_id"
	ContextKeySessionID ContextKey = "session_id"
	ContextKeyClientIP  ContextKey = "client_ip"
	ContextKeyMethod    ContextKey = "method"
	ContextKeyPath      ContextKey = "path"
)

// SetupLogger initializes the process-wide slog logger. Request-scoped
// values placed in the context by the HTTP middleware are attached to every
// record through ContextHandler.
func SetupLogger(level string, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: parseLevel(level) == slog.LevelDebug,
	}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(NewContextHandler(handler))
	slog.SetDefault(logger)

	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
