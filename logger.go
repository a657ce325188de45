package enterprise

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Logger receives structured key/value logs. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NewLogger returns a slog logger writing to stderr at the given level
// ("debug", "info", "warn", "error"). json selects the JSON handler.
func NewLogger(level string, json bool) *slog.Logger {
	return slog.New(newLogHandler(os.Stderr, level, json))
}

func newLogHandler(w io.Writer, level string, json bool) slog.Handler {
	logLevel := new(slog.LevelVar)

	switch strings.ToLower(level) {
	case "trace", "debug":
		logLevel.Set(slog.LevelDebug)
	case "info", "information":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	if json {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func discardLogger() Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// DefaultRequestID generates a random request id for log correlation.
func DefaultRequestID() string {
	return uuid.NewString()
}
