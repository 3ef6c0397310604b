package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrMessageRequired      = errors.New("message is required")
	ErrUnsupportedMediaType = errors.New("content type is not application/json")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrInvalidBody          = errors.New("request body is not valid JSON")
	ErrUpstream             = errors.New("upstream model failed")
)
