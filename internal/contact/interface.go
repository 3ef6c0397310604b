package contact

import "context"

// UseCase relays contact-form submissions by email.
type UseCase interface {
	// Submit validates the form, checks the per-IP limit and the CAPTCHA,
	// then sends the notification email.
	Submit(ctx context.Context, input SubmitInput) error
}
