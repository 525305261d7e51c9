package llm

// ModelCost holds per-million-token pricing for a model.
// Prices are in USD per 1 million tokens.
type ModelCost struct {
	PromptPerMTok     float64 // USD per 1M prompt tokens
	CompletionPerMTok float64 // USD per 1M completion tokens
}

// Calculate returns the USD cost for the given token counts.
func (c ModelCost) Calculate(promptTokens, completionTokens int) float64 {
	return float64(promptTokens)*c.PromptPerMTok/1_000_000 +
		float64(completionTokens)*c.CompletionPerMTok/1_000_000
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// CostFor returns the pricing for a model ID, falling back to DeepSeek chat
// pricing for unknown models.
func CostFor(modelID string) ModelCost {
	if c := LookupCost(modelID); c != nil {
		return *c
	}
	return modelCosts["deepseek-chat"]
}

// modelCosts is the embedded pricing table.
// Last updated: 2026-09-30.
var modelCosts = map[string]ModelCost{
	// DeepSeek
	"deepseek-chat":     {0.27, 1.10},
	"deepseek-reasoner": {0.55, 2.19},

	// Anthropic
	"claude-3-5-haiku-latest":   {0.8, 4},
	"claude-haiku-4-5":          {1, 5},
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-sonnet-4-20250514":  {3, 15},
	"claude-sonnet-4-5":         {3, 15},

	// OpenAI
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},

	// Google (Gemini)
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},

	"mock": {0, 0},
}
