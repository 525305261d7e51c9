package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/kidguard/internal/llm"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "kidguard.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func loadTestConfig(t *testing.T, path string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	prev := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = prev })
	if err := loadConfig(); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
}

func TestLLMConfig_FileValues(t *testing.T) {
	for _, env := range aiEnv {
		t.Setenv(env, "")
	}
	t.Setenv("DEEPSEEK_API_KEY", "")

	loadTestConfig(t, writeConfig(t, `
ai:
  provider: openai
  api_key: sk-file
  model: gpt-4o
  timeout: 45s
  max_retries: 5
  requests_per_second: 2.5
language: English
`))

	cfg, err := llmConfig()
	if err != nil {
		t.Fatalf("llmConfig: %v", err)
	}
	if cfg.Provider != "openai" || cfg.APIKey != "sk-file" || cfg.Model != "gpt-4o" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("expected 45s timeout, got %v", cfg.Timeout)
	}
	if cfg.MaxRetries != 5 || cfg.RequestsPerSecond != 2.5 {
		t.Errorf("unexpected retry/rate settings: %+v", cfg)
	}
	if viper.GetString("language") != "English" {
		t.Errorf("expected language from file, got %q", viper.GetString("language"))
	}
}

func TestLLMConfig_EnvOverridesFile(t *testing.T) {
	for _, env := range aiEnv {
		t.Setenv(env, "")
	}
	t.Setenv("KIDGUARD_AI_PROVIDER", "deepseek")
	t.Setenv("KIDGUARD_AI_API_KEY", "sk-env")
	t.Setenv("KIDGUARD_AI_TIMEOUT", "20")

	loadTestConfig(t, writeConfig(t, `
ai:
  provider: openai
  api_key: sk-file
  timeout: 45s
`))

	cfg, err := llmConfig()
	if err != nil {
		t.Fatalf("llmConfig: %v", err)
	}
	if cfg.Provider != "deepseek" || cfg.APIKey != "sk-env" {
		t.Errorf("environment should win over the file: %+v", cfg)
	}
	if cfg.Timeout != 20*time.Second {
		t.Errorf("expected 20s timeout from env, got %v", cfg.Timeout)
	}
}

func TestLLMConfig_FileTimeout(t *testing.T) {
	tests := []struct {
		name string
		body string
		want time.Duration
	}{
		{"bare seconds", "ai:\n  timeout: 30\n", 30 * time.Second},
		{"quoted seconds", "ai:\n  timeout: \"12\"\n", 12 * time.Second},
		{"duration", "ai:\n  timeout: 1m\n", time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, env := range aiEnv {
				t.Setenv(env, "")
			}
			loadTestConfig(t, writeConfig(t, tt.body))

			cfg, err := llmConfig()
			if err != nil {
				t.Fatalf("llmConfig: %v", err)
			}
			if cfg.Timeout != tt.want {
				t.Errorf("got %v, want %v", cfg.Timeout, tt.want)
			}
		})
	}
}

func TestLLMConfig_InvalidFileTimeout(t *testing.T) {
	for _, env := range aiEnv {
		t.Setenv(env, "")
	}
	loadTestConfig(t, writeConfig(t, "ai:\n  timeout: soon\n"))

	_, err := llmConfig()
	var cfgErr *llm.ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "timeout" {
		t.Fatalf("expected timeout ConfigurationError, got %v", err)
	}
}

func TestLoadConfig_MissingDefaultFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())
	prev := cfgFile
	cfgFile = ""
	t.Cleanup(func() { cfgFile = prev })

	if err := loadConfig(); err != nil {
		t.Fatalf("a missing default config file is not an error: %v", err)
	}
}

func TestResolveDBPath_Flag(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	p := filepath.Join(t.TempDir(), "nested", "k.db")
	viper.Set("db", p)

	got, err := resolveDBPath()
	if err != nil {
		t.Fatalf("resolveDBPath: %v", err)
	}
	if got != p {
		t.Errorf("got %q, want %q", got, p)
	}
	if _, err := os.Stat(filepath.Dir(p)); err != nil {
		t.Errorf("parent directory not created: %v", err)
	}
}
