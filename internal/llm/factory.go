package llm

import (
	"context"
	"fmt"
	"log/slog"
)

// NewClient creates a Provider from configuration. It fails fast with a
// *ConfigurationError when the configuration is incomplete and otherwise
// returns the base provider wrapped with the resilience decorators:
// caller → retry → rate limit → logging → base.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderDeepSeek:
		base, err = NewDeepSeekProvider(cfg)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg)
	case ProviderMock:
		base = NewMockProvider()
	default:
		return nil, &ConfigurationError{Field: "provider", Message: fmt.Sprintf("unknown provider %q", cfg.Provider)}
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return Wrap(base, cfg, logger), nil
}

// Wrap applies the retry, rate limit and logging decorators to base.
func Wrap(base Provider, cfg Config, logger *slog.Logger) Provider {
	logged := WithLogging(base, logger)
	limited := WithRateLimit(logged, cfg.RequestsPerSecond)
	return WithRetry(limited, cfg, logger)
}
