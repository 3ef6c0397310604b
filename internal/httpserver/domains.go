package httpserver

import (
	"context"

	chatHTTP "advisor-edge/internal/chat/delivery/http"
	contactHTTP "advisor-edge/internal/contact/delivery/http"
	"advisor-edge/internal/middleware"
	"advisor-edge/internal/ratelimit"
)

// setupChatDomain registers POST /chat. Guards run in order: origin check,
// then the per-fingerprint rate limit.
func (srv HTTPServer) setupChatDomain(ctx context.Context, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.chatUC, srv.chatHTTP)

	chatHTTP.RegisterRoutes(srv.gin, h,
		mw.OriginGuard(),
		mw.RateLimit(srv.chatLimiter, ratelimit.Fingerprint),
	)

	srv.l.Infof(ctx, "Chat domain registered (model=%s)", srv.chatUC.Model())
	return nil
}

// setupContactDomain registers POST /contact. Its rate limit is per client IP
// and runs inside the use case, after field validation.
func (srv HTTPServer) setupContactDomain(ctx context.Context, mw middleware.Middleware) error {
	h := contactHTTP.New(srv.l, srv.contactUC)

	contactHTTP.RegisterRoutes(srv.gin, h, mw.OriginGuard())

	srv.l.Infof(ctx, "Contact domain registered")
	return nil
}
