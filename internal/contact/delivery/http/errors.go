package http

import (
	"errors"
	"net/http"

	"advisor-edge/internal/contact"
	pkgErrors "advisor-edge/pkg/errors"
)

var (
	errInvalidBody   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid_body", "Invalid request body")
	errMissingFields = pkgErrors.NewHTTPError(http.StatusBadRequest, "missing_fields", "Missing required fields")
	errInvalidEmail  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid_email", "Invalid email format")
	errRateLimited   = pkgErrors.NewHTTPError(http.StatusTooManyRequests, "rate_limited", "Rate limit exceeded")
	errNotConfigured = pkgErrors.NewHTTPError(http.StatusInternalServerError, "not_configured", "reCAPTCHA not configured")
	errCaptchaFailed = pkgErrors.NewHTTPError(http.StatusForbidden, "captcha_failed", "reCAPTCHA verification failed")
	errSendFailed    = pkgErrors.NewHTTPError(http.StatusBadGateway, "send_failed", "Email send failed")
	errServer        = pkgErrors.NewHTTPError(http.StatusInternalServerError, "server_error", "Server error")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, contact.ErrInvalidBody):
		return errInvalidBody
	case errors.Is(err, contact.ErrMissingFields):
		return errMissingFields
	case errors.Is(err, contact.ErrInvalidEmail):
		return errInvalidEmail
	case errors.Is(err, contact.ErrRateLimited):
		return errRateLimited
	case errors.Is(err, contact.ErrNotConfigured):
		return errNotConfigured
	case errors.Is(err, contact.ErrCaptchaFailed):
		return errCaptchaFailed
	case errors.Is(err, contact.ErrSendFailed):
		return errSendFailed
	default:
		return errServer
	}
}
