package middleware

import (
	"strings"

	"advisor-edge/pkg/log"
)

type Middleware struct {
	l              log.Logger
	allowedOrigins map[string]struct{}
}

// New creates the shared middleware set. Blank origins are ignored.
func New(l log.Logger, allowedOrigins []string) Middleware {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = struct{}{}
		}
	}
	return Middleware{
		l:              l,
		allowedOrigins: allowed,
	}
}

func (m Middleware) isAllowedOrigin(origin string) bool {
	_, ok := m.allowedOrigins[origin]
	return ok
}
