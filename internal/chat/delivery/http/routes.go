package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts POST /chat behind guards (origin check, rate limit).
func RegisterRoutes(r gin.IRoutes, h Handler, guards ...gin.HandlerFunc) {
	handlers := make([]gin.HandlerFunc, 0, len(guards)+1)
	handlers = append(handlers, guards...)
	handlers = append(handlers, h.Chat)
	r.POST("/chat", handlers...)
}
