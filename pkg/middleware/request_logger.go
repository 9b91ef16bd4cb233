package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jpdelos/creative-marketplace/pkg/logger"
)

// HeaderRequestID is the header carrying the request ID, generated when the
// client does not supply one.
const HeaderRequestID = "X-Request-ID"

// RequestID attaches a request ID to the request context and response
// headers so log lines across the request share one correlation field.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, requestID)

		c.Next()
	}
}

// RequestLogger logs one structured line per request with method, path,
// status, latency, and client IP. Runs after RequestID so the request ID is
// in the context.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("host", c.Request.Host),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.ErrorCtx(c.Request.Context(), "request completed", fields...)
		case c.Writer.Status() >= 400:
			logger.WarnCtx(c.Request.Context(), "request completed", fields...)
		default:
			logger.InfoCtx(c.Request.Context(), "request completed", fields...)
		}
	}
}
