// README: Itinerary handler tests against a stubbed model provider.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tripbrief/internal/http/handlers"
	"tripbrief/internal/modules/itinerary"
)

// stubProvider is a test double for ai.LLMProvider.
type stubProvider struct {
	reply   string
	err     error
	block   bool
	prompts []string
}

func (s *stubProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return s.reply, s.err
}

func (s *stubProvider) Model() string { return "stub" }

func (s *stubProvider) Close() error { return nil }

const parisJSON = `{"destination":"Paris","price_range":"$$$","ideal_visit_times":["April","May"],"top_attractions":["Louvre","Eiffel Tower"],"currency":"EUR"}`

func buildTestRouter(p *stubProvider, timeout time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewItineraryHandler(itinerary.NewService(p), timeout, nil)
	r := gin.New()
	r.GET("/api/itinerary", h.Get)
	r.POST("/api/itinerary", h.Create)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}

func TestGet_ReturnsRecord(t *testing.T) {
	p := &stubProvider{reply: "```json\n" + parisJSON + "\n```"}
	r := buildTestRouter(p, time.Second)

	w := doRequest(r, http.MethodGet, "/api/itinerary?destination="+url.QueryEscape("Paris, France"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["destination"] != "Paris" || body["currency"] != "EUR" {
		t.Fatalf("unexpected body %v", body)
	}
	if len(p.prompts) != 1 {
		t.Fatalf("expected one provider call, got %d", len(p.prompts))
	}
}

func TestCreate_ReturnsRecord(t *testing.T) {
	p := &stubProvider{reply: parisJSON}
	r := buildTestRouter(p, time.Second)

	w := doRequest(r, http.MethodPost, "/api/itinerary", map[string]any{"destination": "Paris"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := decodeBody(t, w)["top_attractions"]; len(got.([]any)) != 2 {
		t.Fatalf("unexpected attractions %v", got)
	}
}

func TestFetch_BadRequests(t *testing.T) {
	p := &stubProvider{reply: parisJSON}
	r := buildTestRouter(p, time.Second)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{name: "missing query", method: http.MethodGet, path: "/api/itinerary"},
		{name: "blank query", method: http.MethodGet, path: "/api/itinerary?destination=%20%20"},
		{name: "blank body", method: http.MethodPost, path: "/api/itinerary", body: map[string]any{"destination": ""}},
		{name: "wrong type", method: http.MethodPost, path: "/api/itinerary", body: map[string]any{"destination": 42}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, tc.method, tc.path, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
	if len(p.prompts) != 0 {
		t.Fatalf("provider must not be called for bad requests, got %d calls", len(p.prompts))
	}
}

func TestFetch_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		provider *stubProvider
		wantCode int
		wantKind string
	}{
		{
			name:     "malformed",
			provider: &stubProvider{reply: "Sorry, I cannot help."},
			wantCode: http.StatusBadGateway,
			wantKind: "malformed_response",
		},
		{
			name:     "missing field",
			provider: &stubProvider{reply: `{"destination":"Paris","price_range":"$$$","top_attractions":["Louvre"]}`},
			wantCode: http.StatusBadGateway,
			wantKind: "missing_field",
		},
		{
			name:     "transport",
			provider: &stubProvider{err: errors.New("connection refused")},
			wantCode: http.StatusBadGateway,
			wantKind: "transport",
		},
		{
			name:     "deadline",
			provider: &stubProvider{block: true},
			wantCode: http.StatusGatewayTimeout,
			wantKind: "transport",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := buildTestRouter(tc.provider, 20*time.Millisecond)
			w := doRequest(r, http.MethodGet, "/api/itinerary?destination=Paris", nil)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			if body["kind"] != tc.wantKind {
				t.Fatalf("expected kind %q, got %v", tc.wantKind, body["kind"])
			}
			if body["error"] == "" {
				t.Fatalf("expected an error message")
			}
		})
	}
}

func TestFetch_MissingFieldMessageNamesField(t *testing.T) {
	p := &stubProvider{reply: `{"destination":"Paris","price_range":"$$$","top_attractions":["Louvre"]}`}
	r := buildTestRouter(p, time.Second)

	w := doRequest(r, http.MethodGet, "/api/itinerary?destination=Paris", nil)
	if got := decodeBody(t, w)["error"]; got != "missing required field: ideal_visit_times" {
		t.Fatalf("unexpected error message %v", got)
	}
}
