package itinerary

import (
	"context"

	"tripbrief/internal/ai"
)

// Service fetches itineraries from a language model.
type Service struct {
	provider ai.LLMProvider
}

// NewService creates a Service that sends prompts to provider.
// The provider is owned by the caller and may be shared between services.
func NewService(provider ai.LLMProvider) *Service {
	return &Service{provider: provider}
}

// GetItinerary asks the model for an itinerary of destination and validates the reply.
// Every call makes exactly one provider request; nothing is cached or retried.
// Errors always match ErrFetchFailed; use Cause or errors.As to tell variants apart.
func (s *Service) GetItinerary(ctx context.Context, destination string) (Record, error) {
	text, err := s.provider.GenerateText(ctx, buildPrompt(destination))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return Parse(text)
}
