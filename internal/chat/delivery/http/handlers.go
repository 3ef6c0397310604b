package http

import (
	"github.com/gin-gonic/gin"

	"advisor-edge/pkg/response"
)

// Chat godoc
// @Summary     Ask the advisor
// @Description Answers one chat turn in English or French. Pricing, timeline, out-of-scope, vague and prompt-probing messages get templated replies; everything else goes to the upstream model and is reshaped to a short reply ending with a call-to-action.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReqDoc true "Chat turn"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.ErrorResp "Message is required"
// @Failure     403 {object} response.ErrorResp "Origin not allowed"
// @Failure     413 {object} response.ErrorResp "Payload too large"
// @Failure     415 {object} response.ErrorResp "Invalid content type"
// @Failure     429 {object} response.ErrorResp "Rate limit exceeded"
// @Failure     500 {object} response.ErrorResp "AI service error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.http.Chat: invalid request: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Reply(ctx, req.toInput(h.historyLimit))
	if err != nil {
		h.l.Errorf(ctx, "chat.http.Chat: uc.Reply: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}
