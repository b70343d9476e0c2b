package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ContextKey is the type for context keys used by the logger
type ContextKey string

const (
	// LoggerKey is the context key for the logger instance
	LoggerKey ContextKey = "logger"

	// RequestIDKey is the gin context key holding the request ID
	RequestIDKey = "requestID"
)

// New creates a logger at the given level. Development output goes through
// a console writer, otherwise JSON lines are written to stdout.
func New(level string, development bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if development {
		out = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Caller().Logger()
}

// NewWithWriter creates a new structured logger with a custom writer
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Caller().Logger()
}

// WithContext adds the logger to the context
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext returns the request scoped logger, or a default info logger
// when none is attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return FromContextOr(ctx, New("info", false))
}

// FromContextOr returns the request scoped logger, or fallback when none is attached
func FromContextOr(ctx context.Context, fallback zerolog.Logger) *zerolog.Logger {
	if ctx != nil {
		if log, ok := ctx.Value(LoggerKey).(zerolog.Logger); ok {
			return &log
		}
	}
	return &fallback
}

// ForComponent tags log with the component emitting its entries
func ForComponent(log zerolog.Logger, component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Middleware logs every request once it completes and attaches a request
// scoped logger to the request context.
func Middleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqLog := log
		if requestID := c.GetString(RequestIDKey); requestID != "" {
			reqLog = log.With().Str("request_id", requestID).Logger()
		}
		c.Request = c.Request.WithContext(WithContext(c.Request.Context(), reqLog))

		c.Next()

		event := reqLog.Info()
		if c.Writer.Status() >= 500 {
			event = reqLog.Error()
		} else if c.Writer.Status() >= 400 {
			event = reqLog.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("remote_addr", c.ClientIP()).
			Msg("HTTP request")
	}
}
