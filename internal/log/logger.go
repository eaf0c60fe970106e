package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu     sync.Mutex
	logger *slog.Logger
)

// Setup initializes the global logger writing to stderr.
// Level defaults to INFO when invalid, format is "json" or "text".
func Setup(level, format string) *slog.Logger {
	return SetupWithWriter(os.Stderr, level, format)
}

// SetupWithWriter initializes the global logger writing to w.
func SetupWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// ParseLevel converts a level name to a slog level.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Get returns the configured logger, or the slog default one if Setup hasn't been called.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// WithComponent returns a logger with the component field set.
func WithComponent(name string) *slog.Logger {
	return Get().With(slog.String("component", name))
}

// WithProfile returns a logger with the profile field set.
func WithProfile(name string) *slog.Logger {
	return WithComponent("profile").With(slog.String("profile", name))
}
