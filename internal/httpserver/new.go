package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"advisor-edge/internal/chat"
	chatHTTP "advisor-edge/internal/chat/delivery/http"
	"advisor-edge/internal/contact"
	"advisor-edge/internal/ratelimit"
	"advisor-edge/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	allowedOrigins []string

	// Chat domain
	chatUC      chat.UseCase
	chatLimiter ratelimit.Checker
	chatHTTP    chatHTTP.Config

	// Contact domain, nil when disabled
	contactUC contact.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	// Chat domain
	ChatUseCase chat.UseCase
	ChatLimiter ratelimit.Checker
	ChatHTTP    chatHTTP.Config

	// Contact domain
	ContactUseCase contact.UseCase
}

// New creates a new HTTPServer instance with all routes mapped.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              cfg.Logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,
		chatUC:         cfg.ChatUseCase,
		chatLimiter:    cfg.ChatLimiter,
		chatHTTP:       cfg.ChatHTTP,
		contactUC:      cfg.ContactUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the configured engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	if srv.chatLimiter == nil {
		return errors.New("chat limiter is required")
	}
	return nil
}
