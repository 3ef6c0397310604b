package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"advisor-edge/config"
	_ "advisor-edge/docs" // Swagger docs
	chatHTTP "advisor-edge/internal/chat/delivery/http"
	chatUC "advisor-edge/internal/chat/usecase"
	"advisor-edge/internal/contact"
	contactUC "advisor-edge/internal/contact/usecase"
	"advisor-edge/internal/httpserver"
	"advisor-edge/internal/ratelimit"
	rlMemory "advisor-edge/internal/ratelimit/repository/memory"
	rlRedis "advisor-edge/internal/ratelimit/repository/redis"
	"advisor-edge/pkg/llmprovider"
	"advisor-edge/pkg/log"
	"advisor-edge/pkg/recaptcha"
	pkgRedis "advisor-edge/pkg/redis"
	"advisor-edge/pkg/resend"
)

const contactWindow = time.Hour

// @title       Advisor Edge API
// @description Bilingual website advisor chat proxy and contact form relay.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Advisor Edge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Rate-limit stores
	newStore, err := rateLimitStores(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize rate-limit store: ", err)
		return
	}

	chatLimiter, err := newLimiter(newStore, "chat:", cfg.Chat.MaxMessagesPerHour, cfg.RateLimit.Window)
	if err != nil {
		logger.Error(ctx, "Failed to initialize chat limiter: ", err)
		return
	}

	// 4. LLM providers
	providers, initErrs, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, e := range initErrs {
		logger.Warnf(ctx, "LLM provider skipped: %v", e)
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM manager config: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "LLM: %d provider(s), primary model %s", len(providers), manager.Model())

	// 5. Chat domain
	chat := chatUC.New(logger, manager, chatUC.Config{
		MaxMessageLength: cfg.Chat.MaxMessageLength,
		MaxHistoryLength: cfg.Chat.MaxHistoryLength,
		HistoryLimit:     cfg.Chat.HistoryLimit,
		MaxOutputWords:   cfg.Chat.MaxOutputWords,
		MaxTokens:        cfg.Chat.MaxTokens,
		Temperature:      cfg.Chat.Temperature,
		UpstreamRPS:      cfg.Chat.UpstreamRPS,
		UpstreamBurst:    cfg.Chat.UpstreamBurst,
	})

	// 6. Contact domain (optional)
	var contactUseCase contact.UseCase
	if cfg.Contact.Enabled {
		contactUseCase, err = newContactUseCase(ctx, cfg, logger, newStore)
		if err != nil {
			logger.Error(ctx, "Failed to initialize contact relay: ", err)
			return
		}
		logger.Info(ctx, "Contact relay enabled")
	} else {
		logger.Info(ctx, "Contact relay disabled")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.Chat.AllowedOrigins,
		ChatUseCase:    chat,
		ChatLimiter:    chatLimiter,
		ChatHTTP: chatHTTP.Config{
			MaxPayloadBytes: cfg.Chat.MaxPayloadBytes,
			HistoryLimit:    cfg.Chat.HistoryLimit,
		},
		ContactUseCase: contactUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// storeFactory builds the store of one limiter scope. window must be the
// limiter's own window so memory entries outlive their reset time.
type storeFactory func(scope string, window time.Duration) ratelimit.Store

// rateLimitStores returns the store factory for the configured driver. Redis
// stores share one client and differ by key prefix; entries expire at their
// reset time, so they ignore window.
func rateLimitStores(ctx context.Context, cfg *config.Config, logger log.Logger) (storeFactory, error) {
	switch cfg.RateLimit.Driver {
	case config.RateLimitDriverRedis:
		client, err := pkgRedis.Connect(ctx, cfg.RateLimit.RedisURL)
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "Rate limit store: redis")
		return func(scope string, _ time.Duration) ratelimit.Store {
			return rlRedis.New(client, cfg.RateLimit.KeyPrefix+scope)
		}, nil
	default:
		logger.Info(ctx, "Rate limit store: memory")
		return func(_ string, window time.Duration) ratelimit.Store {
			return rlMemory.New(cfg.RateLimit.MemoryCapacity, window)
		}, nil
	}
}

// newLimiter builds a limiter whose store is sized to the same window.
func newLimiter(newStore storeFactory, scope string, limit int, window time.Duration) (*ratelimit.Limiter, error) {
	return ratelimit.New(newStore(scope, window), ratelimit.Config{
		Limit:  limit,
		Window: window,
	})
}

func newContactUseCase(ctx context.Context, cfg *config.Config, logger log.Logger, newStore storeFactory) (contact.UseCase, error) {
	limiter, err := newLimiter(newStore, "contact:", cfg.Contact.MaxMessagesPerHour, contactWindow)
	if err != nil {
		return nil, err
	}

	mailer, err := resend.New(resend.Config{APIKey: cfg.Contact.ResendAPIKey})
	if err != nil {
		return nil, err
	}

	// A missing secret leaves captcha nil; submissions then answer 500.
	var captcha recaptcha.IRecaptcha
	if client, err := recaptcha.New(recaptcha.Config{
		Secret:   cfg.Contact.RecaptchaSecret,
		MinScore: cfg.Contact.RecaptchaMinScore,
	}); err == nil {
		captcha = client
	} else {
		logger.Warnf(ctx, "reCAPTCHA not configured: %v", err)
	}

	return contactUC.New(logger, limiter, captcha, mailer, contactUC.Config{
		FromEmail: cfg.Contact.FromEmail,
		ToEmail:   cfg.Contact.ToEmail,
	}), nil
}
