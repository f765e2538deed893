package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// chatCompleter is the subset of openai.Client used here; tests substitute a stub.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider implements LLMProvider on the OpenAI chat completions API.
type OpenAIProvider struct {
	client chatCompleter
	model  string
}

// NewOpenAIProvider builds a provider for apiKey. baseURL may point at any
// OpenAI-compatible endpoint; blank keeps the public API.
func NewOpenAIProvider(apiKey, baseURL, model string) (*OpenAIProvider, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai: missing api key")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultOpenAIModel
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// Model returns the OpenAI model identifier.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// Close is a no-op; the OpenAI client holds no resources of its own.
func (p *OpenAIProvider) Close() error {
	return nil
}

// GenerateText sends prompt as a single user message.
func (p *OpenAIProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: API returned empty choices array")
	}
	return resp.Choices[0].Message.Content, nil
}
