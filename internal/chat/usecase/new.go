package usecase

import (
	"golang.org/x/time/rate"

	"advisor-edge/internal/chat"
	pkgLog "advisor-edge/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      LLM
	throttle *rate.Limiter
	cfg      Config
}

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, llm LLM, cfg Config) chat.UseCase {
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = defaultMaxMessageLength
	}
	if cfg.MaxHistoryLength <= 0 {
		cfg.MaxHistoryLength = defaultMaxHistoryLength
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	if cfg.MaxOutputWords <= 0 {
		cfg.MaxOutputWords = defaultMaxOutputWords
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}

	limit := rate.Inf
	if cfg.UpstreamRPS > 0 {
		limit = rate.Limit(cfg.UpstreamRPS)
	}
	burst := cfg.UpstreamBurst
	if burst <= 0 {
		burst = 1
	}

	return &implUseCase{
		l:        l,
		llm:      llm,
		throttle: rate.NewLimiter(limit, burst),
		cfg:      cfg,
	}
}

func (uc *implUseCase) Model() string {
	return uc.llm.Model()
}
