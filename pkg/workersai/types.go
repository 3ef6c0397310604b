package workersai

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds Workers AI client configuration
type Config struct {
	AccountID  string
	APIToken   string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate fills defaults and rejects unusable configs
func (c *Config) Validate() error {
	if c.AccountID == "" {
		return fmt.Errorf("workersai: account ID is required")
	}
	if c.APIToken == "" {
		return fmt.Errorf("workersai: API token is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// Message is a chat message in the text-generation task schema
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RunRequest is the text-generation input
type RunRequest struct {
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

// RunResult is the text-generation output
type RunResult struct {
	Response string `json:"response"`
	Usage    *Usage `json:"usage,omitempty"`
}

// Usage reports token consumption when the model exposes it
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// envelope is the standard Cloudflare v4 API wrapper
type envelope struct {
	Result  *RunResult   `json:"result"`
	Success bool         `json:"success"`
	Errors  []apiMessage `json:"errors"`
}

type apiMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
