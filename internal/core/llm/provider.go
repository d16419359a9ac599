package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/shared/config"
)

// Generator is the text-generation collaborator: prompt in, text out.
// The model id is chosen per call so callers can walk a candidate list.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
	GetProviderName() string
}

// ProviderType untuk factory
type ProviderType string

const (
	ProviderOpenAI   ProviderType = "openai"
	ProviderGemini   ProviderType = "gemini"
	ProviderGroq     ProviderType = "groq"
	ProviderDeepSeek ProviderType = "deepseek"
	ProviderClaude   ProviderType = "claude"
)

// ErrMissingAPIKey means the selected provider has no credential configured.
var ErrMissingAPIKey = errors.New("api key not configured")

// ProviderConfig untuk create provider
type ProviderConfig struct {
	Type        ProviderType
	APIKey      string
	Temperature float32
	MaxTokens   int
}

// ProviderConfigFrom picks the provider section out of the application config.
func ProviderConfigFrom(cfg *config.Config) *ProviderConfig {
	return &ProviderConfig{
		Type:        ProviderType(cfg.LLMProvider),
		APIKey:      cfg.APIKey(),
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
	}
}

// NewProvider factory untuk create LLM provider
func NewProvider(cfg *ProviderConfig) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: %w", cfg.Type, ErrMissingAPIKey)
	}

	switch cfg.Type {
	case ProviderGemini, "":
		return NewGeminiProvider(cfg.APIKey, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderGroq:
		return NewGroqProvider(cfg.APIKey, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderDeepSeek:
		return NewDeepSeekProvider(cfg.APIKey, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderClaude:
		return NewClaudeProvider(cfg.APIKey, cfg.Temperature, cfg.MaxTokens), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}
