package itinerary_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"tripbrief/internal/ai"
	"tripbrief/internal/modules/itinerary"
)

// TestGetItineraryLiveGemini calls the real Gemini API. It skips when GEMINI_API_KEY is not set.
func TestGetItineraryLiveGemini(t *testing.T) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set; skipping live model test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	provider, err := ai.NewGeminiProvider(ctx, apiKey, os.Getenv("TRIPBRIEF_MODEL"))
	if err != nil {
		t.Fatalf("init provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Close() })

	record, err := itinerary.NewService(provider).GetItinerary(ctx, "Kyoto")
	if err != nil {
		t.Fatalf("GetItinerary: %v", err)
	}
	for _, field := range itinerary.RequiredFields {
		if _, ok := record[field]; !ok {
			t.Fatalf("record missing %q: %#v", field, record)
		}
	}
	t.Logf("model %s returned %d attractions", provider.Model(), len(record.TopAttractions()))
}
