package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// LogrusMiddleware attaches a request scoped logger and request ID to the context and
// logs one line per completed request. An incoming X-Request-ID is kept.
func LogrusMiddleware(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		entry := logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		})

		c.Set("logger", entry)
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		done := entry.WithFields(logrus.Fields{
			"status":  c.Writer.Status(),
			"query":   c.Request.URL.RawQuery,
			"ip":      c.ClientIP(),
			"latency": time.Since(start).String(),
		})

		if len(c.Errors) > 0 {
			done.Error(c.Errors.String())
		} else {
			done.Info("request completed")
		}
	}
}

// Logger answers the request scoped logger, or a standard logger entry outside a request.
func Logger(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get("logger"); ok {
		if l, ok := v.(*logrus.Entry); ok {
			return l
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
