package middleware

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"scrap-market/internal/handler/httperr"
	"scrap-market/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	ctxRequestIDKey = "request_id"
)

// Logger writes one access line per request, tagged with the service that
// served it.
type Logger struct {
	logger *slog.Logger
}

// NewLogger builds the process logger and installs it as the slog default.
// Release mode writes JSON, other modes write text.
func NewLogger(cfg config.LogConfig, service string) *Logger {
	l := NewLoggerTo(os.Stdout, cfg, service, gin.Mode() == gin.ReleaseMode)
	slog.SetDefault(l.logger)
	return l
}

func NewLoggerTo(w io.Writer, cfg config.LogConfig, service string, asJSON bool) *Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if t, ok := a.Value.Any().(time.Time); ok && a.Key == slog.TimeKey {
				a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if asJSON {
		handler = slog.NewJSONHandler(w, opts)
	}
	return &Logger{logger: slog.New(handler).With("service", service)}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware propagates X-Request-ID (minting one when absent) and
// logs the matched route, the authenticated subject and the error code sent
// to the client. 5xx lines are errors, 4xx lines warnings.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Int64("latency_ms", time.Since(start).Milliseconds()),
		}
		if subject, ok := GetSubject(c); ok {
			attrs = append(attrs,
				slog.Int64("subject_id", subject.ID),
				slog.String("subject_role", subject.Role.String()))
		}
		if code := errorCode(c); code != "" {
			attrs = append(attrs, slog.String("error_code", code))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
			if last := c.Errors.Last(); last != nil {
				attrs = append(attrs, slog.String("error", last.Error()))
			}
		case status >= 400:
			level = slog.LevelWarn
		}
		l.logger.LogAttrs(context.Background(), level, "request", attrs...)
	}
}

// RequestID returns the id assigned by LoggingMiddleware.
func RequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

func errorCode(c *gin.Context) string {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		if resp, ok := c.Errors[i].Meta.(httperr.Response); ok {
			return resp.Error.Code
		}
	}
	return ""
}
