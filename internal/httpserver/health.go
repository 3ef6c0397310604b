package httpserver

import (
	"github.com/gin-gonic/gin"

	"advisor-edge/pkg/response"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Reports liveness and the configured model
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status": "ok",
		"model":  srv.chatUC.Model(),
	})
}
