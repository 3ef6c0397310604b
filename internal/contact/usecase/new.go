package usecase

import (
	"time"

	"advisor-edge/internal/contact"
	"advisor-edge/internal/ratelimit"
	pkgLog "advisor-edge/pkg/log"
	"advisor-edge/pkg/recaptcha"
	"advisor-edge/pkg/resend"
)

// Config addresses the notification email.
type Config struct {
	FromEmail string
	ToEmail   string
}

type implUseCase struct {
	l       pkgLog.Logger
	limiter ratelimit.Checker
	captcha recaptcha.IRecaptcha
	mailer  resend.IResend
	cfg     Config
	now     func() time.Time
}

// New creates a new contact UseCase instance. captcha may be nil when no
// secret is configured; submissions then fail with ErrNotConfigured.
func New(
	l pkgLog.Logger,
	limiter ratelimit.Checker,
	captcha recaptcha.IRecaptcha,
	mailer resend.IResend,
	cfg Config,
) contact.UseCase {
	return &implUseCase{
		l:       l,
		limiter: limiter,
		captcha: captcha,
		mailer:  mailer,
		cfg:     cfg,
		now:     time.Now,
	}
}
