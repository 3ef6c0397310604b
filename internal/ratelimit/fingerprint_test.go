package ratelimit_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"advisor-edge/internal/ratelimit"
)

func TestClientIP_Priority(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"cf connecting ip wins", map[string]string{"CF-Connecting-IP": "1.1.1.1", "True-Client-IP": "2.2.2.2", "X-Forwarded-For": "3.3.3.3"}, "1.1.1.1"},
		{"true client ip", map[string]string{"True-Client-IP": "2.2.2.2", "X-Forwarded-For": "3.3.3.3"}, "2.2.2.2"},
		{"first forwarded", map[string]string{"X-Forwarded-For": " 3.3.3.3 , 4.4.4.4"}, "3.3.3.3"},
		{"cf ray", map[string]string{"CF-Ray": "abc123"}, "abc123"},
		{"remote addr", nil, "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/chat", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ratelimit.ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	r := httptest.NewRequest("POST", "/chat", nil)
	r.Header.Set("CF-Connecting-IP", "1.1.1.1")
	r.Header.Set("User-Agent", strings.Repeat("u", 300))
	r.Header.Set("Accept-Language", strings.Repeat("l", 100))

	got := ratelimit.Fingerprint(r)
	want := "1.1.1.1:" + strings.Repeat("u", 120) + ":" + strings.Repeat("l", 32)
	if got != want {
		t.Errorf("Fingerprint() = %q, want %q", got, want)
	}

	bare := httptest.NewRequest("POST", "/chat", nil)
	bare.Header.Set("CF-Connecting-IP", "1.1.1.1")
	if got := ratelimit.Fingerprint(bare); got != "1.1.1.1:unknown:unknown" {
		t.Errorf("Fingerprint() without headers = %q", got)
	}
}
