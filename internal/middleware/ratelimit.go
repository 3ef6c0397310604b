package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advisor-edge/internal/ratelimit"
	"advisor-edge/pkg/response"
)

// KeyFunc derives the rate-limit key of a request.
type KeyFunc func(r *http.Request) string

// RateLimit denies with 429 once checker refuses the request's key. Store
// failures are logged and the request is let through.
func (m Middleware) RateLimit(checker ratelimit.Checker, key KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		allowed, err := checker.Allow(ctx, key(c.Request))
		if err != nil {
			m.l.Warnf(ctx, "middleware.RateLimit: checker.Allow failed, allowing request: %v", err)
			c.Next()
			return
		}
		if !allowed {
			m.l.Infof(ctx, "middleware.RateLimit: limit reached on %s", c.FullPath())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
