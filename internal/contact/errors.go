package contact

import "errors"

// Domain-specific errors for the contact package.
var (
	ErrInvalidBody   = errors.New("request body is not valid JSON")
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrRateLimited   = errors.New("rate limit exceeded")
	ErrNotConfigured = errors.New("recaptcha not configured")
	ErrCaptchaFailed = errors.New("recaptcha verification failed")
	ErrSendFailed    = errors.New("email send failed")
)
