package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is where the request id lives in the Gin context;
// HandleError reads it when logging internal errors.
const ContextKeyRequestID = "request_id"

// RequestID injects an X-Request-ID header into the request and response.
// An incoming id is kept so upstream proxies can correlate.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger logs one line per request: request id, method, path with query,
// status, latency, and client IP, in the same bracketed-id form the error
// handler uses.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		requestID, _ := c.Get(ContextKeyRequestID)
		log.Printf("[%v] %s %s -> %d (%s) %s",
			requestID,
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
		)
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
