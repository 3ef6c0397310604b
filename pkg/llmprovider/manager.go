package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"advisor-edge/pkg/log"
)

// Manager answers a chat turn from the first provider that produces text.
// Providers are tried in priority order; each gets RetryAttempts tries.
type Manager struct {
	providers []Provider
	cfg       Config
	l         log.Logger
}

// Config tunes retries and fallback. The zero value means one attempt on the
// primary provider with no overall deadline.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	// MaxTotalTimeout bounds the whole chain, retries and fallbacks included.
	MaxTotalTimeout time.Duration
}

// NewManager creates a Manager. cfg is copied; nil selects the zero Config.
func NewManager(providers []Provider, cfg *Config, l log.Logger) *Manager {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		cfg:       c,
		l:         l,
	}
}

// Model returns the primary provider's model id, or "" when none is configured.
func (m *Manager) Model() string {
	if len(m.providers) == 0 {
		return ""
	}
	return m.providers[0].Model()
}

// GenerateContent returns the first non-blank answer. A blank answer counts as
// a failure so the next attempt or provider can answer instead. Cancellation
// of ctx stops the chain at once.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.cfg.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w after %d provider(s): %v", ErrAllProvidersFailed, i, err)
		}

		start := time.Now()
		resp, err := m.tryProvider(ctx, provider, req)
		if err == nil {
			m.l.Infof(ctx, "llmprovider.Manager: %s/%s answered in %s (tokens in=%d out=%d)",
				provider.Name(), provider.Model(), time.Since(start).Round(time.Millisecond),
				resp.Usage.inputTokens(), resp.Usage.outputTokens())
			return resp, nil
		}

		m.l.Warnf(ctx, "llmprovider.Manager: %s/%s failed: %v", provider.Name(), provider.Model(), err)
		lastErr = err

		if ctx.Err() != nil || !m.cfg.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// tryProvider calls one provider up to RetryAttempts times with linear backoff.
func (m *Manager) tryProvider(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error
	for attempt := 0; attempt < m.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.cfg.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		switch {
		case err != nil:
			lastErr = err
		case resp == nil || strings.TrimSpace(resp.Text) == "":
			lastErr = &ProviderError{Provider: provider.Name(), Err: ErrEmptyResponse}
		default:
			return resp, nil
		}

		if errors.Is(lastErr, context.Canceled) || errors.Is(lastErr, context.DeadlineExceeded) {
			return nil, lastErr
		}
	}
	return nil, lastErr
}
