package http

import (
	"github.com/gin-gonic/gin"

	"advisor-edge/internal/chat"
	"advisor-edge/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
}

// Config bounds what the handler accepts before the use case runs.
type Config struct {
	MaxPayloadBytes int64
	HistoryLimit    int
}

type handler struct {
	l               log.Logger
	uc              chat.UseCase
	maxPayloadBytes int64
	historyLimit    int
}

const (
	defaultMaxPayloadBytes = 20000
	defaultHistoryLimit    = 6
)

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, cfg Config) Handler {
	if cfg.MaxPayloadBytes <= 0 {
		cfg.MaxPayloadBytes = defaultMaxPayloadBytes
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	return &handler{
		l:               l,
		uc:              uc,
		maxPayloadBytes: cfg.MaxPayloadBytes,
		historyLimit:    cfg.HistoryLimit,
	}
}
