package resend

import "time"

const (
	// DefaultBaseURL is the Resend REST endpoint
	DefaultBaseURL = "https://api.resend.com"

	DefaultTimeout = 15 * time.Second
)
