package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/kidguard/internal/answer"
	"github.com/abhisek/kidguard/internal/exercise"
	"github.com/abhisek/kidguard/internal/guideline"
	"github.com/abhisek/kidguard/internal/llm"
	"github.com/abhisek/kidguard/internal/store"
)

const exerciseJSON = `{"question": "What is 2 + 2?", "correctAnswer": "4", "hints": ["a", "b", "c"]}`

func TestNew_PersistsMetrics(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: exerciseJSON},
		llm.MockResponse{Content: `{"isCorrect": true, "feedback": "Yes!"}`},
	)
	dbPath := filepath.Join(t.TempDir(), "kidguard.db")

	a, err := New(context.Background(), Options{Provider: mock, DBPath: dbPath, Language: "English"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	ctx := context.Background()
	if _, err := a.Generator.Generate(ctx, exercise.GenerateInput{
		Subject: guideline.SubjectMath, Age: 8, Difficulty: guideline.DifficultyEasy, Count: 1,
	}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	v := a.Checker.Validate(ctx, answer.ValidateInput{
		Question: "What is 2 + 2?", CorrectAnswer: "4", ChildAnswer: "four", Age: 8, Subject: guideline.SubjectMath,
	})
	if !v.IsCorrect || v.Fallback {
		t.Fatalf("unexpected verdict: %+v", v)
	}
	if !strings.Contains(mock.Calls[0].System, "English") {
		t.Error("language option not passed to the prompt builder")
	}

	if a.Ledger.Len() != 2 {
		t.Fatalf("expected 2 ledger records, got %d", a.Ledger.Len())
	}
	recs, err := a.Store.ListMetrics(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("list metrics: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 persisted records, got %d", len(recs))
	}
}

func TestNew_WithoutStore(t *testing.T) {
	a, err := New(context.Background(), Options{Provider: llm.NewMockProvider()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()
	if a.Store != nil {
		t.Fatal("expected no store without a db path")
	}

	srv := httptest.NewServer(a.Handler())
	defer srv.Close()

	for _, path := range []string{"/api/health", "/metrics"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s: status %d", path, resp.StatusCode)
		}
	}
}

func TestNew_ConfigurationError(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.APIKey = ""
	_, err := New(context.Background(), Options{LLM: cfg})
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if llm.ErrorType(err) != "configuration" {
		t.Errorf("expected configuration error type, got %q (%v)", llm.ErrorType(err), err)
	}
}

func TestNew_MockProviderFromConfig(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.Provider = llm.ProviderMock
	a, err := New(context.Background(), Options{LLM: cfg})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()
	if a.Provider.ModelID() != "mock" {
		t.Errorf("expected mock model, got %q", a.Provider.ModelID())
	}
}
