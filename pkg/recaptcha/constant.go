package recaptcha

import "time"

const (
	// DefaultVerifyURL is Google's siteverify endpoint
	DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

	// DefaultMinScore is the score a v3 token must exceed
	DefaultMinScore = 0.5

	DefaultTimeout = 10 * time.Second
)
