package exercise

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/kidguard/internal/guideline"
	"github.com/abhisek/kidguard/internal/llm"
	"github.com/abhisek/kidguard/internal/metrics"
	"github.com/abhisek/kidguard/internal/prompt"
)

// errorTypeMalformed is the metrics label for output that failed parsing
// or validation.
const errorTypeMalformed = "malformed_exercise"

// Generator produces exercises through an llm.Provider.
type Generator struct {
	provider llm.Provider
	ledger   *metrics.Ledger
	builder  *prompt.Builder
	config   Config
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a Generator. A nil builder uses the default prompt language;
// a nil logger uses slog.Default().
func New(provider llm.Provider, ledger *metrics.Ledger, builder *prompt.Builder, cfg Config, logger *slog.Logger) *Generator {
	if builder == nil {
		builder = prompt.NewBuilder("")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		provider: provider,
		ledger:   ledger,
		builder:  builder,
		config:   cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// rawExercise is one element of the model output before validation.
type rawExercise struct {
	Question      string     `json:"question"`
	CorrectAnswer answerText `json:"correctAnswer"`
	Answer        answerText `json:"answer"`
	Hints         []string   `json:"hints"`
	Topic         string     `json:"topic"`
}

// answerText is an answer the model sent either as a string or as a bare
// JSON number. Numbers keep their literal spelling ("8", "2.5").
type answerText string

func (a *answerText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = answerText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = answerText(n.String())
	return nil
}

// Generate produces up to input.Count exercises. Invalid input is reported
// before any AI call is made; every later failure is returned as
// *GenerationFailedError. Exactly one metrics record is written per call
// that reaches the gateway.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) ([]Exercise, error) {
	p, err := g.builder.BuildGeneration(input.Subject, input.Age, input.Difficulty, input.Count)
	if err != nil {
		return nil, err
	}
	band, err := guideline.BandFor(input.Age)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithOperation(ctx, string(metrics.OpGenerate))
	start := g.now()

	req := llm.UserRequest(p.System, p.User, g.config.Temperature, g.config.MaxTokens)
	resp, err := g.provider.Complete(ctx, req)

	var exercises []Exercise
	if err == nil {
		exercises, err = g.parse(resp.Content, input, band)
	}
	elapsed := g.now().Sub(start)
	g.record(ctx, resp, elapsed, err)

	if g.config.SlowThreshold > 0 && elapsed > g.config.SlowThreshold {
		g.logger.WarnContext(ctx, "slow exercise generation",
			"subject", input.Subject,
			"age", input.Age,
			"count", input.Count,
			"elapsed_ms", elapsed.Milliseconds())
	}

	if err != nil {
		g.logger.ErrorContext(ctx, "exercise generation failed",
			"subject", input.Subject,
			"age", input.Age,
			"error", err)
		return nil, &GenerationFailedError{Cause: err}
	}

	g.logger.InfoContext(ctx, "exercises generated",
		"subject", input.Subject,
		"age_range", band.String(),
		"difficulty", input.Difficulty,
		"requested", input.Count,
		"returned", len(exercises))
	return exercises, nil
}

func (g *Generator) parse(content string, input GenerateInput, band guideline.AgeBand) ([]Exercise, error) {
	if _, err := llm.DecodeJSON(ExerciseSchema, content); err != nil {
		return nil, &MalformedExerciseError{Index: -1, Reason: "response does not match the exercise format", Err: err}
	}

	doc := llm.ExtractJSON(content)
	var raws []rawExercise
	if strings.HasPrefix(doc, "[") {
		if err := json.Unmarshal([]byte(doc), &raws); err != nil {
			return nil, &MalformedExerciseError{Index: -1, Reason: "invalid exercise array", Err: err}
		}
		if len(raws) > input.Count {
			raws = raws[:input.Count]
		}
	} else {
		var one rawExercise
		if err := json.Unmarshal([]byte(doc), &one); err != nil {
			return nil, &MalformedExerciseError{Index: -1, Reason: "invalid exercise object", Err: err}
		}
		raws = []rawExercise{one}
	}

	exercises := make([]Exercise, 0, len(raws))
	for i, raw := range raws {
		answer := string(raw.CorrectAnswer)
		if answer == "" {
			answer = string(raw.Answer)
		}
		ex := Exercise{
			Question:      strings.TrimSpace(raw.Question),
			CorrectAnswer: strings.TrimSpace(answer),
			Hints:         raw.Hints,
			Topic:         strings.TrimSpace(raw.Topic),
			AgeRange:      band,
			Subject:       input.Subject,
			Difficulty:    input.Difficulty,
		}
		for _, v := range g.config.Validators {
			if verr := v.Validate(&ex, input); verr != nil {
				return nil, &MalformedExerciseError{Index: i, Reason: verr.Message, Err: verr}
			}
		}
		exercises = append(exercises, ex)
	}
	return exercises, nil
}

func (g *Generator) record(ctx context.Context, resp *llm.Response, elapsed time.Duration, err error) {
	if g.ledger == nil {
		return
	}
	rec := metrics.Record{
		Operation:      metrics.OpGenerate,
		Model:          g.provider.ModelID(),
		ResponseTimeMs: elapsed.Milliseconds(),
		Success:        err == nil,
	}
	if resp != nil {
		if resp.Model != "" {
			rec.Model = resp.Model
		}
		rec.PromptTokens = resp.Usage.PromptTokens
		rec.CompletionTokens = resp.Usage.CompletionTokens
		rec.CostUSD = llm.CostFor(rec.Model).Calculate(rec.PromptTokens, rec.CompletionTokens)
	}
	rec.ErrorType = ErrorType(err)
	g.ledger.Record(ctx, rec)
}

// ErrorType returns the metrics label for a generation failure:
// "malformed_exercise" for unusable output, the gateway kind otherwise.
func ErrorType(err error) string {
	var malformed *MalformedExerciseError
	if errors.As(err, &malformed) {
		return errorTypeMalformed
	}
	return llm.ErrorType(err)
}
