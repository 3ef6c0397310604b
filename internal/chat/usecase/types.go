package usecase

import (
	"context"

	"advisor-edge/pkg/llmprovider"
)

// LLM is the upstream text generator. *llmprovider.Manager satisfies it.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	Model() string
}

// Config bounds inputs and outputs of a chat turn.
type Config struct {
	MaxMessageLength int
	MaxHistoryLength int
	// HistoryLimit is how many of the most recent history entries reach the model.
	HistoryLimit int
	MaxOutputWords   int
	MaxTokens        int
	Temperature      float64
	// UpstreamRPS throttles model calls across all clients; <= 0 disables it.
	UpstreamRPS   float64
	UpstreamBurst int
}

const (
	defaultMaxMessageLength = 500
	defaultMaxHistoryLength = 800
	defaultHistoryLimit     = 6
	defaultMaxOutputWords   = 55
	defaultMaxTokens        = 180
	defaultTemperature      = 0.2
	minBodyWords            = 12
)
