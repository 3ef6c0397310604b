package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "workersai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Roles accepted in Request.Messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Request represents a normalized LLM generation request
type Request struct {
	SystemPrompt string
	Messages     []Message
	Temperature  float64
	MaxTokens    int
}

// Message represents a conversation message
type Message struct {
	Role    string
	Content string
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func (u *Usage) inputTokens() int {
	if u == nil {
		return 0
	}
	return u.InputTokens
}

func (u *Usage) outputTokens() int {
	if u == nil {
		return 0
	}
	return u.OutputTokens
}
