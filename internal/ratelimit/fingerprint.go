package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

const (
	maxUserAgentLen      = 120
	maxAcceptLanguageLen = 32
	unknown              = "unknown"
)

// ClientIP returns the best-available client address. Edge headers win over
// X-Forwarded-For, which wins over the socket address.
func ClientIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}
	if ip := strings.TrimSpace(r.Header.Get("True-Client-IP")); ip != "" {
		return ip
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if ray := strings.TrimSpace(r.Header.Get("CF-Ray")); ray != "" {
		return ray
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	return unknown
}

// Fingerprint builds the composite rate-limit key ip:user-agent:accept-language.
func Fingerprint(r *http.Request) string {
	ua := headerOr(r, "User-Agent")
	al := headerOr(r, "Accept-Language")
	return ClientIP(r) + ":" + truncate(ua, maxUserAgentLen) + ":" + truncate(al, maxAcceptLanguageLen)
}

func headerOr(r *http.Request, name string) string {
	if v := r.Header.Get(name); v != "" {
		return v
	}
	return unknown
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
