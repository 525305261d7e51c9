// Package answer judges a child's answer with the AI gateway and falls back
// to exact matching whenever the gateway cannot give a verdict.
package answer

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/kidguard/internal/guideline"
	"github.com/abhisek/kidguard/internal/llm"
	"github.com/abhisek/kidguard/internal/metrics"
	"github.com/abhisek/kidguard/internal/prompt"
)

const (
	feedbackCorrect   = "Correct! ✓"
	feedbackIncorrect = "Not quite. ✗"
)

const systemPrompt = `You are a kind and fair teacher checking a child's answer.
Apply the leniency policy you are given, judge understanding over form, and reply with strict JSON only.`

// Verdict is the outcome of checking one answer.
type Verdict struct {
	IsCorrect       bool   `json:"isCorrect"`
	Feedback        string `json:"feedback"`
	LeniencyApplied bool   `json:"leniencyApplied"`
	Reasoning       string `json:"reasoning,omitempty"`

	// Fallback is true when the verdict came from exact matching rather
	// than the model.
	Fallback bool `json:"fallback"`
}

// ValidateInput is one answer to check.
type ValidateInput struct {
	Question      string
	CorrectAnswer string
	ChildAnswer   string
	Age           int
	Subject       guideline.Subject
}

// Config controls the Checker.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig favors consistent verdicts over variety.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   500,
		Temperature: 0.2,
	}
}

// VerdictSchema is the JSON shape expected from the model.
var VerdictSchema = &llm.Schema{
	Name: "answer-verdict",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect":       map[string]any{"type": "boolean"},
			"feedback":        map[string]any{"type": "string"},
			"leniencyApplied": map[string]any{"type": "boolean"},
			"reasoning":       map[string]any{"type": "string"},
		},
		"required": []any{"isCorrect"},
	},
}

// Checker validates answers through an llm.Provider.
type Checker struct {
	provider llm.Provider
	ledger   *metrics.Ledger
	builder  *prompt.Builder
	config   Config
	logger   *slog.Logger
	now      func() time.Time
}

// NewChecker creates a Checker. A nil builder uses the default prompt
// language; a nil logger uses slog.Default().
func NewChecker(provider llm.Provider, ledger *metrics.Ledger, builder *prompt.Builder, cfg Config, logger *slog.Logger) *Checker {
	if builder == nil {
		builder = prompt.NewBuilder("")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		provider: provider,
		ledger:   ledger,
		builder:  builder,
		config:   cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// errorTypeInvalidInput labels fallbacks taken before the gateway because
// the prompt could not be built.
const errorTypeInvalidInput = "invalid_input"

type verdictOutput struct {
	IsCorrect       bool   `json:"isCorrect"`
	Feedback        string `json:"feedback"`
	LeniencyApplied bool   `json:"leniencyApplied"`
	Reasoning       string `json:"reasoning"`
}

// Validate never fails: if the prompt cannot be built, the gateway gives
// up, or the reply is unusable, the verdict falls back to Fallback.
func (c *Checker) Validate(ctx context.Context, in ValidateInput) Verdict {
	user, err := c.builder.BuildValidation(in.Question, in.CorrectAnswer, in.ChildAnswer, in.Age, in.Subject)
	if err != nil {
		c.logger.WarnContext(ctx, "answer validation prompt rejected, using exact match",
			"subject", in.Subject, "age", in.Age, "error", err)
		if c.ledger != nil {
			c.ledger.Record(ctx, metrics.Record{
				Operation: metrics.OpValidate,
				Model:     c.provider.ModelID(),
				ErrorType: errorTypeInvalidInput,
			})
		}
		return Fallback(in.CorrectAnswer, in.ChildAnswer)
	}

	ctx = llm.WithOperation(ctx, string(metrics.OpValidate))
	start := c.now()

	req := llm.UserRequest(systemPrompt, user, c.config.Temperature, c.config.MaxTokens)
	resp, err := c.provider.Complete(ctx, req)

	var v Verdict
	if err == nil {
		v, err = parseVerdict(resp.Content)
	}
	elapsed := c.now().Sub(start)

	if err != nil {
		c.record(ctx, nil, elapsed, err)
		c.logger.WarnContext(ctx, "answer validation failed, using exact match",
			"subject", in.Subject, "age", in.Age, "error_kind", llm.ErrorType(err), "error", err)
		return Fallback(in.CorrectAnswer, in.ChildAnswer)
	}

	c.record(ctx, resp, elapsed, nil)
	return v
}

func parseVerdict(content string) (Verdict, error) {
	if _, err := llm.DecodeJSON(VerdictSchema, content); err != nil {
		return Verdict{}, err
	}
	var out verdictOutput
	if err := json.Unmarshal([]byte(llm.ExtractJSON(content)), &out); err != nil {
		return Verdict{}, &llm.Error{Kind: llm.KindInvalidResponse, Err: err}
	}

	feedback := strings.TrimSpace(out.Feedback)
	if feedback == "" {
		feedback = defaultFeedback(out.IsCorrect)
	}
	return Verdict{
		IsCorrect:       out.IsCorrect,
		Feedback:        feedback,
		LeniencyApplied: out.LeniencyApplied,
		Reasoning:       out.Reasoning,
	}, nil
}

// Fallback judges by trimmed, case-insensitive equality.
func Fallback(correctAnswer, childAnswer string) Verdict {
	ok := strings.EqualFold(strings.TrimSpace(correctAnswer), strings.TrimSpace(childAnswer))
	return Verdict{
		IsCorrect: ok,
		Feedback:  defaultFeedback(ok),
		Fallback:  true,
	}
}

func defaultFeedback(correct bool) string {
	if correct {
		return feedbackCorrect
	}
	return feedbackIncorrect
}

// record writes the single metrics entry for a call that reached the
// gateway. Failure entries carry zero tokens and cost.
func (c *Checker) record(ctx context.Context, resp *llm.Response, elapsed time.Duration, err error) {
	if c.ledger == nil {
		return
	}
	rec := metrics.Record{
		Operation:      metrics.OpValidate,
		Model:          c.provider.ModelID(),
		ResponseTimeMs: elapsed.Milliseconds(),
		Success:        err == nil,
		ErrorType:      llm.ErrorType(err),
	}
	if resp != nil {
		if resp.Model != "" {
			rec.Model = resp.Model
		}
		rec.PromptTokens = resp.Usage.PromptTokens
		rec.CompletionTokens = resp.Usage.CompletionTokens
		rec.CostUSD = llm.CostFor(rec.Model).Calculate(rec.PromptTokens, rec.CompletionTokens)
	}
	c.ledger.Record(ctx, rec)
}
