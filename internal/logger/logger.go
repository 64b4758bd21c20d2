package logger

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLogLevel converts a string log level to slog.Level
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogger creates a logger with the specified log level.
// Uses colourised text on stderr for the dev environment, otherwise JSON on stderr (stdout is reserved for command output)
func InitLogger(logLevel slog.Level, environment string) *slog.Logger {
	return NewLogger(os.Stderr, logLevel, environment)
}

// NewLogger is InitLogger with an explicit destination
func NewLogger(w io.Writer, logLevel slog.Level, environment string) *slog.Logger {
	if environment == "dev" {
		return slog.New(
			tint.NewHandler(w, &tint.Options{
				Level:      logLevel,
				TimeFormat: time.Kitchen,
			}),
		)
	}
	return slog.New(
		slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: logLevel,
		}))
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

// Transport wraps next so that every outbound request is logged on completion.
//
// Successful requests are logged at debug, 4xx responses at warn and 5xx or transport failures at error.
// The Authorization header is never logged.
func Transport(next http.RoundTripper, logger *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	res, err := t.next.RoundTrip(req)

	logAttrs := []slog.Attr{
		slog.String("type", "HTTP"),
		slog.String("method", req.Method),
		slog.String("host", req.URL.Host),
		slog.String("path", req.URL.Path),
		slog.Bool("authenticated", req.Header.Get("Authorization") != ""),
		slog.Duration("duration", time.Since(start)),
	}

	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", err.Error()))
		t.logger.LogAttrs(req.Context(), slog.LevelError, "request failed", logAttrs...)
		return nil, err
	}

	logAttrs = append(logAttrs, slog.Int("status", res.StatusCode))

	switch {
	case res.StatusCode >= 500:
		t.logger.LogAttrs(req.Context(), slog.LevelError, "request completed", logAttrs...)
	case res.StatusCode >= 400:
		t.logger.LogAttrs(req.Context(), slog.LevelWarn, "request completed", logAttrs...)
	default:
		t.logger.LogAttrs(req.Context(), slog.LevelDebug, "request completed", logAttrs...)
	}

	return res, nil
}
