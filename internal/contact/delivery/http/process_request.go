package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advisor-edge/internal/contact"
)

const maxBodyBytes = 64 << 10

// processSubmitReq binds the contact form body.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, contact.ErrInvalidBody
	}
	return req, nil
}
