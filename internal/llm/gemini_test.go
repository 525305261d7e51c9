package llm

import (
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMapGeminiError(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{genai.APIError{Code: http.StatusTooManyRequests}, KindRateLimited},
		{genai.APIError{Code: http.StatusBadGateway}, KindServer},
		{genai.APIError{Code: http.StatusForbidden}, KindClient},
		{errors.New("connection reset by peer"), KindNetwork},
	}
	for _, tt := range tests {
		got, _ := KindOf(mapGeminiError(tt.err))
		if got != tt.want {
			t.Errorf("mapGeminiError(%v) kind = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestBuildGeminiContents(t *testing.T) {
	contents := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})
	if len(contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(contents))
	}
	if contents[0].Role != "user" || contents[1].Role != "model" {
		t.Fatalf("unexpected roles: %q, %q", contents[0].Role, contents[1].Role)
	}
}
