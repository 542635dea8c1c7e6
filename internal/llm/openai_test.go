package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// openAIServer answers chat completions with content and records the
// requested model and path.
func openAIServer(t *testing.T, status int, content string, seen *map[string]any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			json.NewDecoder(r.Body).Decode(seen)
			(*seen)["_path"] = r.URL.Path
		}
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "nope", "type": "server_error"}})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOpenAIProvider_Structured(t *testing.T) {
	var seen map[string]any
	srv := openAIServer(t, http.StatusOK, `{"name":"Sarah","age":22}`, &seen)
	p, err := NewOpenAIProvider(ProviderConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := p.Generate(context.Background(), Request{
		System:   "sys",
		Messages: []Message{UserMessage("who?")},
		Schema:   testSchema(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	if err := resp.Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Name != "Sarah" || got.Age != 22 {
		t.Errorf("decoded %+v", got)
	}
	if seen["response_format"] == nil {
		t.Error("schema not forwarded as response_format")
	}
	msgs, _ := seen["messages"].([]any)
	if len(msgs) != 2 {
		t.Errorf("expected system + user messages, got %d", len(msgs))
	}
}

func TestOpenAIProvider_SchemaMismatch(t *testing.T) {
	srv := openAIServer(t, http.StatusOK, `{"name":"Sarah"}`, nil)
	p, _ := NewOpenAIProvider(ProviderConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	_, err := p.Generate(context.Background(), Request{Messages: []Message{UserMessage("x")}, Schema: testSchema()})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_StatusMapping(t *testing.T) {
	for status, isRateLimit := range map[int]bool{http.StatusTooManyRequests: true, http.StatusBadGateway: false} {
		srv := openAIServer(t, status, "", nil)
		p, _ := NewOpenAIProvider(ProviderConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
		_, err := p.Generate(context.Background(), Request{Messages: []Message{UserMessage("x")}})
		var rl *ErrRateLimit
		var un *ErrProviderUnavailable
		switch {
		case isRateLimit && !errors.As(err, &rl):
			t.Errorf("%d: expected ErrRateLimit, got %T", status, err)
		case !isRateLimit && !errors.As(err, &un):
			t.Errorf("%d: expected ErrProviderUnavailable, got %T", status, err)
		}
	}
}

func TestOpenRouterGoesThroughOpenAIClient(t *testing.T) {
	var seen map[string]any
	srv := openAIServer(t, http.StatusOK, "Troponin rises within hours.", &seen)

	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "or-key"
	cfg.OpenRouter.BaseURL = srv.URL + "/api/v1"
	cfg.Retry.MaxAttempts = 1

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := p.Generate(context.Background(), Request{Messages: []Message{UserMessage("MI markers?")}})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text != "Troponin rises within hours." {
		t.Errorf("text = %q", resp.Text)
	}
	if seen["model"] != "google/gemini-2.0-flash-001" {
		t.Errorf("model = %v", seen["model"])
	}
	if seen["_path"] != "/api/v1/chat/completions" {
		t.Errorf("path = %v", seen["_path"])
	}
}
