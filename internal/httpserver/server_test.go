package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"advisor-edge/internal/chat"
	"advisor-edge/internal/contact"
	"advisor-edge/internal/ratelimit"
	"advisor-edge/internal/ratelimit/repository/memory"
	"advisor-edge/pkg/log"
)

const allowedOrigin = "https://example.com"

type stubChat struct {
	calls int
}

func (s *stubChat) Reply(ctx context.Context, in chat.ReplyInput) (chat.ReplyOutput, error) {
	s.calls++
	return chat.ReplyOutput{Response: "Hello.", Locale: in.Locale, Source: chat.SourceDeterministic}, nil
}

func (s *stubChat) Model() string { return "@cf/test/model" }

type stubContact struct {
	calls int
}

func (s *stubContact) Submit(ctx context.Context, in contact.SubmitInput) error {
	s.calls++
	return nil
}

type failingChecker struct{}

func (failingChecker) Allow(ctx context.Context, key string) (bool, error) {
	return false, context.DeadlineExceeded
}

func newLimiter(t *testing.T, limit int) ratelimit.Checker {
	t.Helper()
	l, err := ratelimit.New(memory.New(100, time.Hour), ratelimit.Config{Limit: limit, Window: time.Hour})
	if err != nil {
		t.Fatalf("ratelimit.New: %v", err)
	}
	return l
}

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	cfg.Port = 8080
	cfg.Mode = gin.TestMode
	if cfg.AllowedOrigins == nil {
		cfg.AllowedOrigins = []string{allowedOrigin}
	}
	if cfg.ChatUseCase == nil {
		cfg.ChatUseCase = &stubChat{}
	}
	if cfg.ChatLimiter == nil {
		cfg.ChatLimiter = newLimiter(t, 20)
	}
	srv, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func do(srv *HTTPServer, method, path, origin, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	req.RemoteAddr = "203.0.113.7:1234"
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        gin.TestMode,
		ChatUseCase: &stubChat{},
		ChatLimiter: failingChecker{},
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no logger", func(c *Config) { c.Logger = nil }},
		{"no mode", func(c *Config) { c.Mode = "" }},
		{"no port", func(c *Config) { c.Port = 0 }},
		{"no chat use case", func(c *Config) { c.ChatUseCase = nil }},
		{"no chat limiter", func(c *Config) { c.ChatLimiter = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			if _, err := New(cfg); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := do(srv, http.MethodGet, "/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["model"] != "@cf/test/model" {
		t.Errorf("body = %v", body)
	}
}

func TestPreflight(t *testing.T) {
	srv := newTestServer(t, Config{})

	tests := []struct {
		name       string
		path       string
		origin     string
		wantOrigin string
	}{
		{"allowed origin", "/chat", allowedOrigin, allowedOrigin},
		{"unknown origin", "/chat", "https://evil.example", "null"},
		{"unknown path", "/anything", allowedOrigin, allowedOrigin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(srv, http.MethodOptions, tt.path, tt.origin, "")
			if w.Code != http.StatusNoContent {
				t.Fatalf("status = %d", w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if got := w.Header().Get("Access-Control-Max-Age"); got != "86400" {
				t.Errorf("Max-Age = %q", got)
			}
			if w.Body.Len() != 0 {
				t.Errorf("body = %q, want empty", w.Body.String())
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t, Config{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/chat"},
		{http.MethodPost, "/unknown"},
		{http.MethodPost, "/contact"},
	} {
		w := do(srv, tc.method, tc.path, allowedOrigin, "")
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s: status = %d", tc.method, tc.path, w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != allowedOrigin {
			t.Errorf("%s %s: Allow-Origin = %q", tc.method, tc.path, got)
		}
	}
}

func TestChat_OriginGuard(t *testing.T) {
	uc := &stubChat{}
	srv := newTestServer(t, Config{ChatUseCase: uc})

	w := do(srv, http.MethodPost, "/chat", "https://evil.example", `{"message":"hi"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.calls != 0 {
		t.Error("use case must not run for a forbidden origin")
	}

	w = do(srv, http.MethodPost, "/chat", "", `{"message":"hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("no origin: status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "null" {
		t.Errorf("Allow-Origin = %q, want null", got)
	}
}

func TestChat_RateLimit(t *testing.T) {
	uc := &stubChat{}
	srv := newTestServer(t, Config{ChatUseCase: uc, ChatLimiter: newLimiter(t, 2)})

	for i := 0; i < 2; i++ {
		if w := do(srv, http.MethodPost, "/chat", allowedOrigin, `{"message":"hi"}`); w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i+1, w.Code)
		}
	}

	w := do(srv, http.MethodPost, "/chat", allowedOrigin, `{"message":"hi"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.calls != 2 {
		t.Errorf("use case calls = %d, want 2", uc.calls)
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Error("missing Cache-Control on 429")
	}
}

func TestChat_RepeatedMessageWithCapOfOne(t *testing.T) {
	srv := newTestServer(t, Config{ChatLimiter: newLimiter(t, 1)})
	body := `{"message":"How long does a typical embedded systems project take?","lang":"en"}`

	if w := do(srv, http.MethodPost, "/chat", allowedOrigin, body); w.Code != http.StatusOK {
		t.Fatalf("first call: status = %d", w.Code)
	}
	if w := do(srv, http.MethodPost, "/chat", allowedOrigin, body); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second call: status = %d, want 429", w.Code)
	}
}

func TestChat_RateLimitFailsOpen(t *testing.T) {
	srv := newTestServer(t, Config{ChatLimiter: failingChecker{}})

	w := do(srv, http.MethodPost, "/chat", allowedOrigin, `{"message":"hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestChat_RequestID(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := do(srv, http.MethodPost, "/chat", allowedOrigin, `{"message":"hi"}`)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated X-Request-ID")
	}
}

func TestContact_Registered(t *testing.T) {
	uc := &stubContact{}
	srv := newTestServer(t, Config{ContactUseCase: uc})

	body := `{"name":"Ada","email":"ada@example.com","message":"Hello","recaptchaToken":"tok"}`
	w := do(srv, http.MethodPost, "/contact", allowedOrigin, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.calls != 1 {
		t.Errorf("calls = %d", uc.calls)
	}

	w = do(srv, http.MethodPost, "/contact", "https://evil.example", body)
	if w.Code != http.StatusForbidden {
		t.Errorf("forbidden origin: status = %d", w.Code)
	}
}

func TestSwagger_HiddenInProduction(t *testing.T) {
	srv := newTestServer(t, Config{Environment: "production"})

	w := do(srv, http.MethodGet, "/swagger/index.html", "", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
