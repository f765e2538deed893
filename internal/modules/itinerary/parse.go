// README: Model text normalisation (fence stripping), decoding and key-presence validation.
package itinerary

import (
	"encoding/json"
	"errors"
	"strings"
)

const fence = "```"

// StripFence unwraps a markdown code block the model may add despite being told not to.
//
// Text that does not start with a fence is only trimmed. Otherwise the text is split on the
// fence marker and the first fenced segment is kept; a leading "json" language tag is dropped.
// Any later fence, including one embedded in a JSON string value, ends the segment.
func StripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, fence) {
		return text
	}
	text = strings.TrimSpace(strings.Split(text, fence)[1])
	if strings.HasPrefix(text, "json") {
		text = strings.TrimSpace(text[len("json"):])
	}
	return text
}

// Parse turns raw model output into a validated Record.
func Parse(text string) (Record, error) {
	var record Record
	if err := json.Unmarshal([]byte(StripFence(text)), &record); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	if record == nil {
		return nil, &MalformedResponseError{Err: errors.New("response is not a JSON object")}
	}
	if err := validate(record); err != nil {
		return nil, err
	}
	return record, nil
}

func validate(record Record) error {
	for _, field := range RequiredFields {
		if _, ok := record[field]; !ok {
			return &MissingFieldError{Field: field}
		}
	}
	return nil
}
