package itinerary

import "fmt"

const promptTemplate = `Generate a travel itinerary in JSON format with the following exact schema:

{
  "destination": "",
  "price_range": "",
  "ideal_visit_times": ["<time period 1>", "<time period 2>", ......],
  "top_attractions": ["<attraction 1>", "<attraction 2>", ......]
}

Destination: %s

Return ONLY valid JSON. Do not include any explanations, markdown formatting, or code blocks.`

// buildPrompt renders the itinerary instructions. destination is inserted verbatim.
func buildPrompt(destination string) string {
	return fmt.Sprintf(promptTemplate, destination)
}
