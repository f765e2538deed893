package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// Implementations are safe to share once constructed; they hold no per-call state.
type LLMProvider interface {
	// GenerateText sends prompt as the sole content of one request and returns the reply text.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// Model reports the model identifier requests are sent to.
	Model() string

	// Close releases the underlying client.
	Close() error
}
