package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func load(t *testing.T, yaml string) (*Config, error) {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	return fromViper(v)
}

const providersYAML = `
llm:
  providers:
    - name: workersai
      enabled: true
      priority: 1
      account_id: acc
      api_key: ${TEST_CF_TOKEN}
`

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TEST_CF_TOKEN", "secret-token")

	cfg, err := load(t, providersYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Chat.MaxMessagesPerHour != 60 {
		t.Errorf("MaxMessagesPerHour = %d, want 60", cfg.Chat.MaxMessagesPerHour)
	}
	if cfg.Chat.MaxMessageLength != 500 {
		t.Errorf("MaxMessageLength = %d, want 500", cfg.Chat.MaxMessageLength)
	}
	if cfg.Chat.HistoryLimit != 6 || cfg.Chat.MaxHistoryLength != 800 {
		t.Errorf("unexpected history limits: %+v", cfg.Chat)
	}
	if cfg.Chat.MaxOutputWords != 55 {
		t.Errorf("MaxOutputWords = %d, want 55", cfg.Chat.MaxOutputWords)
	}
	if cfg.RateLimit.Window != time.Hour {
		t.Errorf("Window = %v, want 1h", cfg.RateLimit.Window)
	}
	if cfg.RateLimit.Driver != RateLimitDriverMemory {
		t.Errorf("Driver = %q, want memory", cfg.RateLimit.Driver)
	}
	if got := cfg.LLM.Providers[0].APIKey; got != "secret-token" {
		t.Errorf("APIKey not expanded from env: %q", got)
	}
	if len(cfg.Chat.AllowedOrigins) != 0 {
		t.Errorf("expected no allowed origins, got %v", cfg.Chat.AllowedOrigins)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TEST_CF_TOKEN", "secret-token")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("MAX_MESSAGES_PER_HOUR", "5")
	t.Setenv("MAX_MESSAGE_LENGTH", "200")

	cfg, err := load(t, providersYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Chat.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.Chat.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.Chat.AllowedOrigins[i] != want[i] {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.Chat.AllowedOrigins[i], want[i])
		}
	}
	if cfg.Chat.MaxMessagesPerHour != 5 {
		t.Errorf("MaxMessagesPerHour = %d, want 5", cfg.Chat.MaxMessagesPerHour)
	}
	if cfg.Chat.MaxMessageLength != 200 {
		t.Errorf("MaxMessageLength = %d, want 200", cfg.Chat.MaxMessageLength)
	}
}

func TestLoad_WorkersAIFallbackFromEnv(t *testing.T) {
	t.Setenv("CLOUDFLARE_ACCOUNT_ID", "acc-1")
	t.Setenv("CLOUDFLARE_API_TOKEN", "tok-1")

	cfg, err := load(t, "environment:\n  name: test\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.LLM.Providers) != 1 {
		t.Fatalf("expected synthesized provider, got %d", len(cfg.LLM.Providers))
	}
	p := cfg.LLM.Providers[0]
	if p.Name != "workersai" || p.AccountID != "acc-1" || p.APIKey != "tok-1" || p.Model != defaultWorkersAIModel {
		t.Errorf("unexpected provider: %+v", p)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no providers", "environment:\n  name: test\n"},
		{"redis without url", providersYAML + "rate_limit:\n  driver: redis\n"},
		{"unknown driver", providersYAML + "rate_limit:\n  driver: memcached\n"},
		{"contact without credentials", providersYAML + "contact:\n  enabled: true\n"},
		{"output budget below cta floor", providersYAML + "chat:\n  max_output_words: 10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := load(t, tt.yaml); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}
