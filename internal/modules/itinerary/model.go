// README: Itinerary record shape and the typed failure set returned by GetItinerary.
package itinerary

import (
	"errors"
	"fmt"
)

// Required field names, in the order they are checked.
const (
	FieldDestination     = "destination"
	FieldPriceRange      = "price_range"
	FieldIdealVisitTimes = "ideal_visit_times"
	FieldTopAttractions  = "top_attractions"
)

// RequiredFields lists the keys every record must carry. Validation stops at the first one missing.
var RequiredFields = []string{
	FieldDestination,
	FieldPriceRange,
	FieldIdealVisitTimes,
	FieldTopAttractions,
}

// Record is the decoded JSON object returned by the model.
// Only key presence is guaranteed; values keep whatever JSON type the model produced,
// and keys beyond the required four are passed through untouched.
type Record map[string]any

// Destination returns the destination value, or "" when it is not a string.
func (r Record) Destination() string {
	return r.stringField(FieldDestination)
}

// PriceRange returns the free-form price bracket, or "" when it is not a string.
func (r Record) PriceRange() string {
	return r.stringField(FieldPriceRange)
}

// IdealVisitTimes returns the string entries of ideal_visit_times in model order.
func (r Record) IdealVisitTimes() []string {
	return r.stringsField(FieldIdealVisitTimes)
}

// TopAttractions returns the string entries of top_attractions in model order.
func (r Record) TopAttractions() []string {
	return r.stringsField(FieldTopAttractions)
}

func (r Record) stringField(key string) string {
	s, _ := r[key].(string)
	return s
}

func (r Record) stringsField(key string) []string {
	items, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

var (
	// ErrFetchFailed matches every error returned by GetItinerary.
	ErrFetchFailed = errors.New("itinerary fetch failed")

	ErrMalformedResponse = errors.New("malformed model response")
	ErrMissingField      = errors.New("missing required field")
	ErrTransport         = errors.New("model provider call failed")
)

// MalformedResponseError reports that the cleaned model text did not decode as a JSON object.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse || target == ErrFetchFailed
}

// MissingFieldError names the first required key absent from the decoded object.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField || target == ErrFetchFailed
}

// TransportError wraps any failure raised while talking to the model provider.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport || target == ErrFetchFailed
}

// Kind classifies a fetch failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindMalformedResponse
	KindMissingField
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindMalformedResponse:
		return "malformed_response"
	case KindMissingField:
		return "missing_field"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Cause reports which failure variant err carries.
func Cause(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(err, ErrMissingField):
		return KindMissingField
	case errors.Is(err, ErrTransport):
		return KindTransport
	default:
		return KindUnknown
	}
}
