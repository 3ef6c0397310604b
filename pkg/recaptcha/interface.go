package recaptcha

import "context"

// IRecaptcha verifies reCAPTCHA v3 tokens
type IRecaptcha interface {
	// Verify reports whether token is valid and scores above the configured minimum.
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}
