package llm

import (
	"testing"
)

func TestNewDeepSeekProvider(t *testing.T) {
	t.Run("default model", func(t *testing.T) {
		p, err := NewDeepSeekProvider(Config{APIKey: "sk-test"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "deepseek-chat" {
			t.Errorf("model = %q, want %q", p.ModelID(), "deepseek-chat")
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewDeepSeekProvider(Config{})
		if err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("custom model pass-through", func(t *testing.T) {
		p, err := NewDeepSeekProvider(Config{APIKey: "sk-test", Model: "deepseek-reasoner"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "deepseek-reasoner" {
			t.Errorf("model = %q, want %q", p.ModelID(), "deepseek-reasoner")
		}
	})

	t.Run("custom base URL", func(t *testing.T) {
		p, err := NewDeepSeekProvider(Config{APIKey: "sk-test", BaseURL: "https://proxy.example/v1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil {
			t.Fatal("expected non-nil provider")
		}
	})
}
