package resend

import "context"

// IResend sends transactional email
type IResend interface {
	Send(ctx context.Context, email *Email) (*SendResult, error)
}
