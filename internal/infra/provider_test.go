package infra

import (
	"context"
	"testing"

	"tripbrief/internal/config"
)

func TestNewProviderOpenAI(t *testing.T) {
	var cfg config.Config
	cfg.AI.Provider = "openai"
	cfg.AI.OpenAIKey = "test"
	cfg.AI.Model = "gpt-test"

	p, err := NewProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Close()
	if p.Model() != "gpt-test" {
		t.Fatalf("unexpected model %q", p.Model())
	}
}

func TestNewProviderRejectsUnknown(t *testing.T) {
	var cfg config.Config
	cfg.AI.Provider = "llama"
	if _, err := NewProvider(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestNewProviderGeminiRequiresKey(t *testing.T) {
	var cfg config.Config
	cfg.AI.Provider = "gemini"
	if _, err := NewProvider(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for missing Gemini key")
	}
}
