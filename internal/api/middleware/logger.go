package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paarad/27-backroom-generator/pkg/backroom"
	"go.uber.org/zap"
)

// ZapLogger returns a gin middleware that logs every request with zap. Errors attached
// to the context by handlers are logged along with the request.
func ZapLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("user-agent", c.Request.UserAgent()),
		}
		if last := c.Errors.Last(); last != nil {
			fields = append(fields, ErrorFields(last.Err)...)
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("Request handled", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("Request handled", fields...)
		default:
			logger.Info("Request handled", fields...)
		}
	}
}

// ErrorFields describes an error for the logs, including the raw model output
// kept on malformed generation errors
func ErrorFields(err error) []zap.Field {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("kind", backroom.KindOf(err).String()),
	}

	var e *backroom.Error
	if errors.As(err, &e) {
		if e.Raw != "" {
			fields = append(fields, zap.String("raw", e.Raw))
		}
		if e.Cleaned != "" {
			fields = append(fields, zap.String("cleaned", e.Cleaned))
		}
	}

	return fields
}
