package llm

import "fmt"

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// openRouterModels maps friendly names to OpenRouter model IDs.
var openRouterModels = map[string]string{
	"or-gemini-flash": "google/gemini-2.0-flash-001",
	"or-llama":        "meta-llama/llama-3.3-70b-instruct",
	"or-deepseek":     "deepseek/deepseek-chat",
}

// NewOpenRouterProvider creates a provider backed by OpenRouter, which
// exposes an OpenAI-compatible API over many upstream models.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openRouterBaseURL
	}

	model := resolveModel(cfg.Model, openRouterModels)
	return newOpenAIProviderRaw(cfg.APIKey, baseURL, model, "openrouter"), nil
}
