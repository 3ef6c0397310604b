package recaptcha

import (
	"errors"
	"net/http"
	"time"
)

// ErrMissingSecret is returned by New when no secret key is configured.
var ErrMissingSecret = errors.New("recaptcha: secret is required")

// Config holds reCAPTCHA client configuration
type Config struct {
	Secret     string
	MinScore   float64
	VerifyURL  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate fills defaults and rejects unusable configs
func (c *Config) Validate() error {
	if c.Secret == "" {
		return ErrMissingSecret
	}
	if c.MinScore <= 0 {
		c.MinScore = DefaultMinScore
	}
	if c.VerifyURL == "" {
		c.VerifyURL = DefaultVerifyURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// VerifyResponse is the siteverify payload
type VerifyResponse struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}
