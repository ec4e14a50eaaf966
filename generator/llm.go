package generator

import (
	"context"
	"fmt"
	"strings"
)

// LLMClient abstracts the text-generation provider so it can be swapped or mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings is the provider configuration handed to NewLLM.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

const (
	ProviderGemini   = "gemini"
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderMock     = "mock"

	// DefaultModel is used by the gemini provider when no model is configured.
	DefaultModel = "gemini-2.5-flash"
)

// NewLLM builds the client for cfg.Provider. A missing API key is not an
// error here; it surfaces when the first request is made.
func NewLLM(cfg LLMSettings) (LLMClient, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderGemini:
		return NewGeminiLLM(cfg), nil
	case ProviderOpenAI:
		return NewOpenAILLMFromConfig(&cfg)
	case ProviderDeepSeek:
		// DeepSeek speaks the OpenAI protocol but has no default endpoint.
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return NewOpenAILLMFromConfig(&cfg)
	case ProviderMock:
		return MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}
}
