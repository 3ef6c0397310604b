package usecase

import (
	"context"
	"fmt"

	"advisor-edge/internal/contact"
	"advisor-edge/pkg/resend"
)

const defaultSubject = "Contact"

// Submit relays one contact-form submission.
func (uc *implUseCase) Submit(ctx context.Context, input contact.SubmitInput) error {
	if input.Name == "" || input.Email == "" || input.Message == "" || input.RecaptchaToken == "" {
		return contact.ErrMissingFields
	}
	if !validEmail(input.Email) {
		return contact.ErrInvalidEmail
	}

	allowed, err := uc.limiter.Allow(ctx, input.ClientIP)
	if err != nil {
		uc.l.Warnf(ctx, "contact.usecase.Submit: limiter.Allow failed, allowing request: %v", err)
	} else if !allowed {
		return contact.ErrRateLimited
	}

	if uc.captcha == nil {
		return contact.ErrNotConfigured
	}
	ok, err := uc.captcha.Verify(ctx, input.RecaptchaToken, input.ClientIP)
	if err != nil {
		uc.l.Warnf(ctx, "contact.usecase.Submit: captcha.Verify: %v", err)
		return contact.ErrCaptchaFailed
	}
	if !ok {
		return contact.ErrCaptchaFailed
	}

	subject := input.Subject
	if subject == "" {
		subject = defaultSubject
	}
	fields := emailFields{
		Name:     sanitizeHTML(input.Name),
		Company:  sanitizeHTML(input.Company),
		Email:    sanitizeHTML(input.Email),
		Subject:  sanitizeHTML(subject),
		Message:  sanitizeHTML(input.Message),
		Locale:   sanitizeHTML(input.Locale),
		ClientIP: sanitizeHTML(input.ClientIP),
		SentAt:   uc.now(),
	}

	res, err := uc.mailer.Send(ctx, &resend.Email{
		From:    uc.cfg.FromEmail,
		To:      []string{uc.cfg.ToEmail},
		Subject: fmt.Sprintf("[Contact] %s - %s", fields.Subject, fields.Name),
		HTML:    buildEmailHTML(fields),
	})
	if err != nil {
		uc.l.Errorf(ctx, "contact.usecase.Submit: mailer.Send: %v", err)
		return fmt.Errorf("%w: %v", contact.ErrSendFailed, err)
	}

	uc.l.Infof(ctx, "contact.usecase.Submit: relayed message id=%s", res.ID)
	return nil
}
