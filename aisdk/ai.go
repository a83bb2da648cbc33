package aisdk

import (
	"errors"

	"github.com/sashabaranov/go-openai"
)

// EnvAIAPIKey is the environment variable consulted for the AI API key.
const EnvAIAPIKey = "AI_API_KEY"

// Defaults applied when neither an override nor an environment variable
// supplies a value. Credentials are never defaulted.
const (
	DefaultAIProvider = "openai"
	DefaultAIModel    = "gpt-4"
)

// ProviderBaseURLs maps AI provider identities to their API base URLs.
// Providers absent from the map use the go-openai default endpoint.
var ProviderBaseURLs = map[string]string{
	"openai":      "https://api.openai.com/v1",
	"huggingface": "https://api-inference.huggingface.co/v1",
}

// AIProviderConfig holds resolved AI model provider settings.
// Supports OpenAI, Hugging Face, and custom OpenAI-compatible providers.
// Fields are resolved once at construction and must not be mutated.
type AIProviderConfig struct {
	Provider string // "openai" | "huggingface" | "custom"
	APIKey   string
	Model    string
}

// AIProviderOptions carries explicit overrides for NewAIProviderConfig.
// A zero field falls back to the environment, then to the documented default.
type AIProviderOptions struct {
	Provider string
	APIKey   string
	Model    string
}

// NewAIProviderConfig builds an AI provider configuration.
func NewAIProviderConfig(opts AIProviderOptions, o ...Option) *AIProviderConfig {
	s := newSettings(o)
	return &AIProviderConfig{
		Provider: orDefault(opts.Provider, DefaultAIProvider),
		APIKey:   resolve(opts.APIKey, s.env, EnvAIAPIKey, ""),
		Model:    orDefault(opts.Model, DefaultAIModel),
	}
}

// Validate reports whether the configuration carries a usable API key.
func (c *AIProviderConfig) Validate() error {
	if c.APIKey == "" {
		return errors.New("AI_API_KEY not configured; set via environment or constructor")
	}
	return nil
}

// NewClient constructs a go-openai client for the resolved provider, pointed
// at the provider's base URL when one is known. The client is configured
// only; no request is made.
func (c *AIProviderConfig) NewClient() (*openai.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	clientConfig := openai.DefaultConfig(c.APIKey)
	if base, ok := ProviderBaseURLs[c.Provider]; ok {
		clientConfig.BaseURL = base
	}
	return openai.NewClientWithConfig(clientConfig), nil
}
