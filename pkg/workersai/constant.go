package workersai

import "time"

const (
	// DefaultBaseURL is the Cloudflare REST API root
	DefaultBaseURL = "https://api.cloudflare.com/client/v4"

	// DefaultModel is the instruction-tuned Mistral model served by Workers AI
	DefaultModel = "@cf/mistral/mistral-7b-instruct-v0.2-lora"

	// DefaultTimeout bounds a single run call
	DefaultTimeout = 30 * time.Second
)
