package http

import (
	"errors"
	"net/http"

	"advisor-edge/internal/chat"
	pkgErrors "advisor-edge/pkg/errors"
)

var (
	errMessageRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "message_required", "Message is required")
	errInvalidBody     = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid_body", "Invalid JSON body")
	errContentType     = pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, "invalid_content_type", "Invalid content type")
	errPayloadTooLarge = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "payload_too_large", "Payload too large")
	errAIService       = pkgErrors.NewHTTPError(http.StatusInternalServerError, "ai_service_error", "AI service error. Please try again.")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised is reported as the generic AI service error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrMessageRequired):
		return errMessageRequired
	case errors.Is(err, chat.ErrInvalidBody):
		return errInvalidBody
	case errors.Is(err, chat.ErrUnsupportedMediaType):
		return errContentType
	case errors.Is(err, chat.ErrPayloadTooLarge):
		return errPayloadTooLarge
	default:
		return errAIService
	}
}
