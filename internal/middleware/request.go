package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"advisor-edge/pkg/log"
	"advisor-edge/pkg/response"
)

const (
	HeaderRequestID    = "X-Request-ID"
	maxRequestIDLength = 64
)

// RequestID reuses a caller-supplied X-Request-ID or generates one, echoes it
// in the response and attaches it to the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog logs method, route, status and latency. Query strings, bodies and
// client identifiers are not logged.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.l.Infof(c.Request.Context(), "%s %s %d %s",
			c.Request.Method, route, c.Writer.Status(), time.Since(start).Round(time.Microsecond))
	}
}

// Recovery turns a panic into the generic 500 body.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic: %v", rec)
				if !c.Writer.Written() {
					response.InternalError(c)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}

// NotFound answers unmatched routes.
func (m Middleware) NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.NotFound(c)
		c.Abort()
	}
}
