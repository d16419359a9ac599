package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL     = "https://api.groq.com/openai/v1"
	deepSeekBaseURL = "https://api.deepseek.com/v1"
)

// OpenAIProvider talks to any OpenAI-compatible chat completion API.
// Groq and DeepSeek are the same client with a different base URL.
type OpenAIProvider struct {
	name        string
	client      *openai.Client
	temperature float32
	maxTokens   int
}

func NewOpenAIProvider(apiKey string, temperature float32, maxTokens int) *OpenAIProvider {
	return newOpenAICompatible("OpenAI", openai.DefaultConfig(apiKey), temperature, maxTokens)
}

func NewGroqProvider(apiKey string, temperature float32, maxTokens int) *OpenAIProvider {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL
	return newOpenAICompatible("Groq", config, temperature, maxTokens)
}

func NewDeepSeekProvider(apiKey string, temperature float32, maxTokens int) *OpenAIProvider {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = deepSeekBaseURL
	return newOpenAICompatible("DeepSeek", config, temperature, maxTokens)
}

func newOpenAICompatible(name string, config openai.ClientConfig, temperature float32, maxTokens int) *OpenAIProvider {
	if temperature == 0 {
		temperature = 0.7
	}
	if maxTokens == 0 {
		maxTokens = 1024
	}

	return &OpenAIProvider{
		name:        name,
		client:      openai.NewClientWithConfig(config),
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (p *OpenAIProvider) GetProviderName() string {
	return p.name
}

func (p *OpenAIProvider) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return "", p.wrapError(model, err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

// wrapError maps go-openai's error types onto ProviderError so status-based
// classification works the same for every provider.
func (p *OpenAIProvider) wrapError(model string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{
			Provider:   p.name,
			Model:      model,
			StatusCode: apiErr.HTTPStatusCode,
			Body:       apiErr.Message,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		body := ""
		if reqErr.Err != nil {
			body = reqErr.Err.Error()
		}
		return &ProviderError{
			Provider:   p.name,
			Model:      model,
			StatusCode: reqErr.HTTPStatusCode,
			Body:       body,
		}
	}

	return fmt.Errorf("%s error: %w", p.name, err)
}
