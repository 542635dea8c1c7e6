package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicReply(text, stop string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_test",
			"type":        "message",
			"role":        "assistant",
			"content":     []map[string]any{{"type": "text", "text": text}},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": stop,
			"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
		})
	}
}

func TestAnthropicProvider_PlainText(t *testing.T) {
	var body string
	handler := func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		anthropicReply("The SA node sets the pace.", "end_turn")(w, r)
	}

	p := newTestAnthropicProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a medical study assistant.",
		Messages:  []Message{UserMessage("What sets heart rate?")},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "The SA node sets the pace." {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.Content != nil {
		t.Errorf("plain replies carry no structured content, got %s", resp.Content)
	}
	if resp.Usage.TotalTokens != 80 || resp.StopReason != StopEnd {
		t.Errorf("usage/stop = %+v / %q", resp.Usage, resp.StopReason)
	}
	if !strings.Contains(body, "medical study assistant") {
		t.Errorf("system prompt not sent: %s", body)
	}
}

func TestAnthropicProvider_StructuredTruncated(t *testing.T) {
	p := newTestAnthropicProvider(t, anthropicReply(`{"weak":`, "max_tokens"))
	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{UserMessage("feedback")},
		Schema:    testSchema(),
		MaxTokens: 16,
	})
	var mt *ErrMaxTokensExceeded
	if !errors.As(err, &mt) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
}

func TestAnthropicProvider_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{http.StatusInternalServerError, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
	}
	for _, tt := range tests {
		handler := func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]any{
				"type":  "error",
				"error": map[string]any{"type": "api_error", "message": "nope"},
			})
		}
		p := newTestAnthropicProvider(t, handler)
		_, err := p.Generate(context.Background(), Request{Messages: []Message{UserMessage("x")}, MaxTokens: 10})
		if !tt.check(err) {
			t.Errorf("status %d mapped to %T (%v)", tt.status, err, err)
		}
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct{ in, want string }{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-opus-4-1", "claude-opus-4-1"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, anthropicModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
