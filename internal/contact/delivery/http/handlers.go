package http

import (
	"github.com/gin-gonic/gin"

	"advisor-edge/internal/ratelimit"
	"advisor-edge/pkg/response"
)

// Submit godoc
// @Summary     Send a contact message
// @Description Verifies the reCAPTCHA v3 token and relays the form by email.
// @Tags        Contact
// @Accept      json
// @Produce     json
// @Param       body body submitReq true "Contact form"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.ErrorResp "Missing required fields / Invalid email format"
// @Failure     403 {object} response.ErrorResp "reCAPTCHA verification failed"
// @Failure     429 {object} response.ErrorResp "Rate limit exceeded"
// @Failure     500 {object} response.ErrorResp "reCAPTCHA not configured"
// @Failure     502 {object} response.ErrorResp "Email send failed"
// @Router      /contact [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Submit(ctx, req.toInput(ratelimit.ClientIP(c.Request))); err != nil {
		h.l.Warnf(ctx, "contact.http.Submit: uc.Submit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, submitResp{Success: true})
}
