package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/meetscribe/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// requestID tags the request context with the caller's id or a fresh one.
func (s *implServer) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logger.WithRequestID(c.Request.Context(), c.GetHeader(requestIDHeader))
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, logger.RequestID(ctx))
		c.Next()
	}
}

func (s *implServer) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "%s %s %d %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Millisecond))
	}
}
