package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advisor-edge/pkg/response"
)

const (
	corsAllowMethods = "POST, OPTIONS"
	corsAllowHeaders = "Content-Type"
	corsMaxAge       = "86400"
)

// CORS sets the CORS headers on every response and answers preflight
// requests with 204. A disallowed or missing origin gets "null".
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowOrigin := "null"
		if origin != "" && m.isAllowedOrigin(origin) {
			allowOrigin = origin
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", allowOrigin)
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		h.Set("Access-Control-Max-Age", corsMaxAge)
		h.Add("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// OriginGuard rejects requests whose non-empty Origin is not allow-listed.
// Requests without an Origin header (server-to-server, curl) pass.
func (m Middleware) OriginGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && !m.isAllowedOrigin(origin) {
			m.l.Warnf(c.Request.Context(), "middleware.OriginGuard: origin not allowed")
			response.Forbidden(c, "Origin not allowed")
			c.Abort()
			return
		}
		c.Next()
	}
}
