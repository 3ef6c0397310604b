package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chat proxy
	Chat      ChatConfig
	RateLimit RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Contact relay
	Contact ContactConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ChatConfig holds the chat endpoint's input limits and generation settings.
type ChatConfig struct {
	AllowedOrigins     []string
	MaxMessagesPerHour int
	MaxMessageLength   int
	MaxHistoryLength   int
	HistoryLimit       int
	MaxPayloadBytes    int64
	MaxOutputWords     int
	MaxTokens          int
	Temperature        float64
	UpstreamRPS        float64
	UpstreamBurst      int
}

// RateLimitConfig selects and tunes the rate-limit store.
type RateLimitConfig struct {
	Driver         string // memory | redis
	Window         time.Duration
	MemoryCapacity int
	RedisURL       string
	KeyPrefix      string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name      string `yaml:"name"`
	Enabled   bool   `yaml:"enabled"`
	Priority  int    `yaml:"priority"`
	APIKey    string `yaml:"api_key"`
	AccountID string `yaml:"account_id,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Model     string `yaml:"model"`
	Timeout   string `yaml:"timeout"`
}

// ContactConfig holds the contact relay's upstream credentials.
type ContactConfig struct {
	Enabled            bool
	ResendAPIKey       string
	ToEmail            string
	FromEmail          string
	RecaptchaSecret    string
	RecaptchaMinScore  float64
	MaxMessagesPerHour int
}

const (
	EnvironmentProduction = "production"

	// Twelve body words plus the longest call-to-action sentence.
	minOutputWords = 21

	RateLimitDriverMemory = "memory"
	RateLimitDriverRedis  = "redis"

	defaultWorkersAIModel = "@cf/mistral/mistral-7b-instruct-v0.2-lora"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Chat. The bare names are what the edge deployment exported.
	cfg.Chat.AllowedOrigins = splitList(firstString(v, "allowed_origins", "chat.allowed_origins"))
	cfg.Chat.MaxMessagesPerHour = firstInt(v, "max_messages_per_hour", "chat.max_messages_per_hour")
	cfg.Chat.MaxMessageLength = firstInt(v, "max_message_length", "chat.max_message_length")
	cfg.Chat.MaxHistoryLength = v.GetInt("chat.max_history_length")
	cfg.Chat.HistoryLimit = v.GetInt("chat.history_limit")
	cfg.Chat.MaxPayloadBytes = v.GetInt64("chat.max_payload_bytes")
	cfg.Chat.MaxOutputWords = v.GetInt("chat.max_output_words")
	cfg.Chat.MaxTokens = v.GetInt("chat.max_tokens")
	cfg.Chat.Temperature = v.GetFloat64("chat.temperature")
	cfg.Chat.UpstreamRPS = v.GetFloat64("chat.upstream_rps")
	cfg.Chat.UpstreamBurst = v.GetInt("chat.upstream_burst")

	// Rate limit store
	cfg.RateLimit.Driver = strings.ToLower(v.GetString("rate_limit.driver"))
	cfg.RateLimit.Window = v.GetDuration("rate_limit.window")
	cfg.RateLimit.MemoryCapacity = v.GetInt("rate_limit.memory_capacity")
	cfg.RateLimit.RedisURL = firstString(v, "redis_url", "rate_limit.redis_url")
	cfg.RateLimit.KeyPrefix = v.GetString("rate_limit.key_prefix")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:      getStringFromMap(providerMap, "name"),
						Enabled:   getBoolFromMap(providerMap, "enabled"),
						Priority:  getIntFromMap(providerMap, "priority"),
						APIKey:    expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						AccountID: expandEnvVar(v, getStringFromMap(providerMap, "account_id")),
						BaseURL:   getStringFromMap(providerMap, "base_url"),
						Model:     getStringFromMap(providerMap, "model"),
						Timeout:   getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Without a providers section, fall back to the Workers AI binding credentials.
	if len(cfg.LLM.Providers) == 0 {
		accountID := v.GetString("cloudflare_account_id")
		token := v.GetString("cloudflare_api_token")
		if accountID != "" && token != "" {
			cfg.LLM.Providers = []ProviderConfig{{
				Name:      "workersai",
				Enabled:   true,
				Priority:  1,
				APIKey:    token,
				AccountID: accountID,
				Model:     firstString(v, "ai_model", "chat.model"),
			}}
			if cfg.LLM.Providers[0].Model == "" {
				cfg.LLM.Providers[0].Model = defaultWorkersAIModel
			}
		}
	}

	// Contact relay
	cfg.Contact.Enabled = v.GetBool("contact.enabled")
	cfg.Contact.ResendAPIKey = expandEnvVar(v, firstString(v, "resend_api_key", "contact.resend_api_key"))
	cfg.Contact.ToEmail = firstString(v, "to_email", "contact.to_email")
	cfg.Contact.FromEmail = firstString(v, "from_email", "contact.from_email")
	cfg.Contact.RecaptchaSecret = expandEnvVar(v, firstString(v, "recaptcha_secret", "contact.recaptcha_secret"))
	cfg.Contact.RecaptchaMinScore = v.GetFloat64("contact.recaptcha_min_score")
	cfg.Contact.MaxMessagesPerHour = v.GetInt("contact.max_messages_per_hour")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("chat.allowed_origins", "")
	v.SetDefault("chat.max_messages_per_hour", 60)
	v.SetDefault("chat.max_message_length", 500)
	v.SetDefault("chat.max_history_length", 800)
	v.SetDefault("chat.history_limit", 6)
	v.SetDefault("chat.max_payload_bytes", 20000)
	v.SetDefault("chat.max_output_words", 55)
	v.SetDefault("chat.max_tokens", 180)
	v.SetDefault("chat.temperature", 0.2)
	v.SetDefault("chat.upstream_rps", 5)
	v.SetDefault("chat.upstream_burst", 10)

	v.SetDefault("rate_limit.driver", RateLimitDriverMemory)
	v.SetDefault("rate_limit.window", time.Hour)
	v.SetDefault("rate_limit.memory_capacity", 10000)
	v.SetDefault("rate_limit.key_prefix", "advisor:rl:")

	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "500ms")
	v.SetDefault("llm.max_total_timeout", "25s")

	v.SetDefault("contact.enabled", false)
	v.SetDefault("contact.recaptcha_min_score", 0.5)
	v.SetDefault("contact.max_messages_per_hour", 5)
}

func (c *Config) validate() error {
	if len(c.LLM.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set CLOUDFLARE_ACCOUNT_ID and CLOUDFLARE_API_TOKEN")
	}
	if c.Chat.MaxMessagesPerHour <= 0 {
		return fmt.Errorf("max_messages_per_hour must be positive")
	}
	if c.Chat.MaxMessageLength <= 0 {
		return fmt.Errorf("max_message_length must be positive")
	}
	if c.Chat.MaxOutputWords < minOutputWords {
		return fmt.Errorf("chat.max_output_words must be at least %d", minOutputWords)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive")
	}
	switch c.RateLimit.Driver {
	case RateLimitDriverMemory:
	case RateLimitDriverRedis:
		if c.RateLimit.RedisURL == "" {
			return fmt.Errorf("rate_limit.redis_url is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown rate_limit.driver %q", c.RateLimit.Driver)
	}
	if c.Contact.Enabled && (c.Contact.ResendAPIKey == "" || c.Contact.ToEmail == "" || c.Contact.FromEmail == "") {
		return fmt.Errorf("contact relay enabled but resend_api_key, to_email or from_email is missing")
	}
	return nil
}

// firstString returns the first non-empty value among keys.
func firstString(v *viper.Viper, keys ...string) string {
	for _, k := range keys {
		if s := v.GetString(k); s != "" {
			return s
		}
	}
	return ""
}

// firstInt returns the first positive value among keys.
func firstInt(v *viper.Viper, keys ...string) int {
	for _, k := range keys {
		if n := v.GetInt(k); n > 0 {
			return n
		}
	}
	return 0
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
