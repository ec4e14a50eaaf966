// Package config loads the application configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"marketgenius/generator"
)

// DefaultPath is used when --config is not given.
const DefaultPath = "config/config.json"

// Config is read once at startup and never mutated afterwards.
type Config struct {
	LLM                   LLMConfig `json:"llm"`
	ServerAddr            string    `json:"server_addr,omitempty"`
	RequestTimeoutSeconds int       `json:"request_timeout_seconds,omitempty"`
	Verbose               bool      `json:"verbose,omitempty"`
}

// LLMConfig selects and authenticates the text-generation provider.
type LLMConfig struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

func Default() Config {
	return Config{
		LLM: LLMConfig{
			Provider: generator.ProviderGemini,
			Model:    generator.DefaultModel,
		},
		ServerAddr:            ":8080",
		RequestTimeoutSeconds: 60,
	}
}

// LoadConfig reads JSON config from disk on top of Default. A missing file at
// DefaultPath is not an error; a missing explicit path is.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return cfg, nil
}

// Load reads .env (if present), the JSON file and the environment, then validates.
func Load(path string) (Config, error) {
	_ = godotenv.Load()
	cfg, err := LoadConfig(path)
	if err != nil {
		return Config{}, err
	}
	cfg = cfg.WithEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithEnv returns a copy with environment overrides applied. The API key is
// taken from the provider's variable when the file does not set one.
func (c Config) WithEnv(getenv func(string) string) Config {
	if c.LLM.APIKey == "" {
		for _, key := range apiKeyEnv(c.LLM.Provider) {
			if v := getenv(key); v != "" {
				c.LLM.APIKey = v
				break
			}
		}
	}
	if v := getenv("MARKETGENIUS_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := getenv("MARKETGENIUS_ADDR"); v != "" {
		c.ServerAddr = v
	}
	return c
}

func apiKeyEnv(provider string) []string {
	switch strings.ToLower(provider) {
	case generator.ProviderOpenAI:
		return []string{"OPENAI_API_KEY", "API_KEY"}
	case generator.ProviderDeepSeek:
		return []string{"DEEPSEEK_API_KEY", "API_KEY"}
	default:
		return []string{"GEMINI_API_KEY", "API_KEY"}
	}
}

// Validate checks provider settings. It does not require an API key: a
// missing key is reported when generation is attempted.
func (c Config) Validate() error {
	switch strings.ToLower(c.LLM.Provider) {
	case "", generator.ProviderGemini, generator.ProviderMock:
	case generator.ProviderOpenAI:
		if c.LLM.Model == "" || c.LLM.Model == generator.DefaultModel {
			return fmt.Errorf("config error: llm.model is required for provider openai")
		}
	case generator.ProviderDeepSeek:
		if c.LLM.BaseURL == "" {
			return fmt.Errorf("config error: llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
	default:
		return fmt.Errorf("config error: llm provider %s not supported", c.LLM.Provider)
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'request_timeout_seconds' must be non-negative")
	}
	return nil
}

// RequestTimeout is zero when no timeout is configured.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// LLMSettings converts the llm block for generator.NewLLM.
func (c Config) LLMSettings() generator.LLMSettings {
	return generator.LLMSettings{
		Provider: c.LLM.Provider,
		Model:    c.LLM.Model,
		APIKey:   c.LLM.APIKey,
		BaseURL:  c.LLM.BaseURL,
	}
}
