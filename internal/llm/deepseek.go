package llm

const defaultDeepSeekBaseURL = "https://api.deepseek.com/v1"

// NewDeepSeekProvider creates a provider targeting the DeepSeek API.
// DeepSeek exposes an OpenAI-compatible API, so the OpenAI SDK is reused
// with DeepSeek's base URL and default model.
func NewDeepSeekProvider(cfg Config) (*OpenAIProvider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultDeepSeekBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModels[ProviderDeepSeek]
	}
	return NewOpenAIProvider(cfg)
}
