package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/abhisek/kidguard/internal/app"
	"github.com/abhisek/kidguard/internal/llm"
)

// aiEnv maps config file keys to the environment variables that override them.
var aiEnv = map[string]string{
	"ai.provider":            "KIDGUARD_AI_PROVIDER",
	"ai.api_key":             "KIDGUARD_AI_API_KEY",
	"ai.base_url":            "KIDGUARD_AI_BASE_URL",
	"ai.model":               "KIDGUARD_AI_MODEL",
	"ai.timeout":             "KIDGUARD_AI_TIMEOUT",
	"ai.max_retries":         "KIDGUARD_AI_MAX_RETRIES",
	"ai.requests_per_second": "KIDGUARD_AI_RPS",
	"language":               "KIDGUARD_LANGUAGE",
}

func bindEnv() {
	for key, env := range aiEnv {
		_ = viper.BindEnv(key, env)
	}
}

// llmConfig resolves the gateway configuration. Precedence is environment
// over the config file's "ai" section over llm defaults. A file timeout may
// be a duration ("45s") or a bare number of seconds, like the environment.
func llmConfig() (llm.Config, error) {
	cfg := llm.ConfigFromEnv()

	if v := viper.GetString("ai.provider"); v != "" {
		cfg.Provider = v
	}
	if v := viper.GetString("ai.api_key"); v != "" {
		cfg.APIKey = v
	}
	if v := viper.GetString("ai.base_url"); v != "" {
		cfg.BaseURL = v
	}
	if v := viper.GetString("ai.model"); v != "" {
		cfg.Model = v
	}
	if viper.IsSet("ai.timeout") && os.Getenv("KIDGUARD_AI_TIMEOUT") == "" {
		raw := viper.GetString("ai.timeout")
		d, ok := llm.ParseTimeout(raw)
		if !ok {
			return llm.Config{}, &llm.ConfigurationError{Field: "timeout", Message: fmt.Sprintf("invalid value %q", raw)}
		}
		cfg.Timeout = d
	}
	if viper.IsSet("ai.max_retries") {
		cfg.MaxRetries = viper.GetInt("ai.max_retries")
	}
	if viper.IsSet("ai.requests_per_second") {
		cfg.RequestsPerSecond = viper.GetFloat64("ai.requests_per_second")
	}
	return cfg, nil
}

// newApp builds the application with durable metrics.
func newApp(ctx context.Context) (*app.App, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	llmCfg, err := llmConfig()
	if err != nil {
		return nil, err
	}
	return app.New(ctx, app.Options{
		LLM:      llmCfg,
		Language: viper.GetString("language"),
		DBPath:   dbPath,
	})
}
