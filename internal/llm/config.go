package llm

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderDeepSeek  = "deepseek"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderMock      = "mock"
)

// defaultModels is the model used when Config.Model is empty.
var defaultModels = map[string]string{
	ProviderDeepSeek:  "deepseek-chat",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-haiku",
	ProviderGemini:    "gemini-flash",
	ProviderMock:      "mock",
}

// Config holds the gateway client configuration.
type Config struct {
	// Provider selects the upstream API.
	// Values: "deepseek", "openai", "anthropic", "gemini", "mock"
	Provider string

	APIKey string

	// BaseURL overrides the API endpoint for OpenAI-compatible providers.
	// Default for deepseek: "https://api.deepseek.com/v1".
	BaseURL string

	// Model is the model identifier. Empty means the provider default.
	Model string

	// Timeout bounds a single attempt, not the whole call. Default: 30s.
	Timeout time.Duration

	// MaxRetries is the total number of attempts per call. Default: 3.
	MaxRetries int

	Backoff BackoffConfig

	// RequestsPerSecond caps outbound attempts. 0 disables the limiter.
	RequestsPerSecond float64
}

// BackoffConfig configures the delay between attempts.
type BackoffConfig struct {
	Base time.Duration
	Cap  time.Duration
}

// Delay returns the wait after the given failed attempt (1-based):
// min(Base * 2^(attempt-1), Cap).
func (b BackoffConfig) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := b.Base
	for i := 1; i < attempt; i++ {
		d *= 2
		if b.Cap > 0 && d >= b.Cap {
			return b.Cap
		}
	}
	if b.Cap > 0 && d > b.Cap {
		return b.Cap
	}
	return d
}

// DefaultConfig returns a Config with sensible defaults. Only the API key
// has no default.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderDeepSeek,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		Backoff: BackoffConfig{
			Base: 1 * time.Second,
			Cap:  10 * time.Second,
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset or unparseable values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("KIDGUARD_AI_PROVIDER"); p != "" {
		cfg.Provider = strings.ToLower(p)
	}
	if k := os.Getenv("KIDGUARD_AI_API_KEY"); k != "" {
		cfg.APIKey = k
	} else if k := os.Getenv("DEEPSEEK_API_KEY"); k != "" && cfg.Provider == ProviderDeepSeek {
		cfg.APIKey = k
	}
	if u := os.Getenv("KIDGUARD_AI_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if m := os.Getenv("KIDGUARD_AI_MODEL"); m != "" {
		cfg.Model = m
	}
	if t := os.Getenv("KIDGUARD_AI_TIMEOUT"); t != "" {
		if d, ok := ParseTimeout(t); ok {
			cfg.Timeout = d
		}
	}
	if r := os.Getenv("KIDGUARD_AI_MAX_RETRIES"); r != "" {
		if n, err := strconv.Atoi(r); err == nil {
			cfg.MaxRetries = n
		}
	}
	if r := os.Getenv("KIDGUARD_AI_RPS"); r != "" {
		if f, err := strconv.ParseFloat(r, 64); err == nil {
			cfg.RequestsPerSecond = f
		}
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (DeepSeek → OpenAI → Anthropic → Gemini) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	probes := []struct {
		env      string
		provider string
	}{
		{"DEEPSEEK_API_KEY", ProviderDeepSeek},
		{"OPENAI_API_KEY", ProviderOpenAI},
		{"ANTHROPIC_API_KEY", ProviderAnthropic},
		{"GEMINI_API_KEY", ProviderGemini},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			cfg.APIKey = k
			return cfg, true
		}
	}

	return Config{}, false
}

// ResolvedModel returns Model, or the provider default when Model is empty.
func (c Config) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModels[c.Provider]
}

// Validate checks that the configuration can build a working client.
func (c Config) Validate() error {
	if _, ok := defaultModels[c.Provider]; !ok {
		return &ConfigurationError{Field: "provider", Message: "unknown provider " + strconv.Quote(c.Provider)}
	}
	if c.Provider != ProviderMock && strings.TrimSpace(c.APIKey) == "" {
		return &ConfigurationError{Field: "api_key", Message: "an API key is required for the " + c.Provider + " provider"}
	}
	if c.Timeout <= 0 {
		return &ConfigurationError{Field: "timeout", Message: "must be positive"}
	}
	if c.MaxRetries < 1 {
		return &ConfigurationError{Field: "max_retries", Message: "must be at least 1"}
	}
	if c.Backoff.Base < 0 || c.Backoff.Cap < 0 {
		return &ConfigurationError{Field: "backoff", Message: "durations must not be negative"}
	}
	if c.RequestsPerSecond < 0 {
		return &ConfigurationError{Field: "requests_per_second", Message: "must not be negative"}
	}
	return nil
}

// ParseTimeout accepts a Go duration ("45s") or a bare number of seconds.
func ParseTimeout(s string) (time.Duration, bool) {
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d, true
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return time.Duration(n) * time.Second, true
	}
	return 0, false
}
