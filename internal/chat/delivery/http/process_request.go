package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"

	"advisor-edge/internal/chat"
)

// processChatReq checks framing (content type, size) then decodes and
// validates the chat body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq

	if !strings.Contains(strings.ToLower(c.GetHeader("Content-Type")), "application/json") {
		return req, chat.ErrUnsupportedMediaType
	}
	if c.Request.ContentLength > h.maxPayloadBytes {
		return req, chat.ErrPayloadTooLarge
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxPayloadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, chat.ErrPayloadTooLarge
		}
		return req, chat.ErrInvalidBody
	}

	if err := json.Unmarshal(body, &req); err != nil {
		// Valid JSON that is not an object carries no message.
		if json.Valid(body) {
			return chatReq{}, chat.ErrMessageRequired
		}
		return chatReq{}, chat.ErrInvalidBody
	}

	return req, req.validate()
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
