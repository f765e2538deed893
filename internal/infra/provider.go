// README: Builds the configured LLM provider.
package infra

import (
	"context"
	"fmt"

	"tripbrief/internal/ai"
	"tripbrief/internal/config"
)

// NewProvider returns the provider selected by cfg.AI.Provider. The caller owns it and must Close it.
func NewProvider(ctx context.Context, cfg config.Config) (ai.LLMProvider, error) {
	switch cfg.AI.Provider {
	case ai.ProviderGemini, "":
		p, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case ai.ProviderOpenAI:
		p, err := ai.NewOpenAIProvider(cfg.AI.OpenAIKey, cfg.AI.OpenAIBaseURL, cfg.AI.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AI.Provider)
	}
}
