package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/saketh8887/medconnect/internal/store"
)

func TestMockProvider_FIFOAndRecording(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"name":"a","age":3}`)},
	)

	r1, err := mock.Generate(context.Background(), Request{Messages: []Message{UserMessage("one")}})
	if err != nil {
		t.Fatal(err)
	}
	if r1.Text != "first" || r1.Usage.TotalTokens != 15 || r1.StopReason != StopEnd {
		t.Errorf("r1 = %+v", r1)
	}

	r2, err := mock.Generate(context.Background(), Request{Schema: testSchema()})
	if err != nil {
		t.Fatal(err)
	}
	if string(r2.Content) != `{"name":"a","age":3}` {
		t.Errorf("content = %s", r2.Content)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("empty queue: %T", err)
	}

	last, ok := mock.LastCall()
	if !ok || mock.CallCount() != 3 || last.Schema != nil {
		t.Errorf("recording off: %d calls, last %+v", mock.CallCount(), last)
	}
}

func TestMockProvider_ValidatesStructuredReplies(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"name":"a"}`)})
	_, err := mock.Generate(context.Background(), Request{Schema: testSchema()})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestResponseDecode(t *testing.T) {
	var v map[string]any
	if err := (&Response{Text: "plain"}).Decode(&v); err == nil {
		t.Error("plain response should not decode")
	}
	if err := (&Response{Content: json.RawMessage(`{"a":1}`)}).Decode(&v); err != nil || v["a"] != float64(1) {
		t.Errorf("decode: %v %v", err, v)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MEDCONNECT_LLM_PROVIDER", "OpenAI")
	t.Setenv("MEDCONNECT_OPENAI_API_KEY", "sk-test")
	t.Setenv("MEDCONNECT_OPENAI_MODEL", "gpt-4.1-mini")
	t.Setenv("MEDCONNECT_GEMINI_BASE_URL", "http://localhost:9")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderOpenAI {
		t.Fatalf("provider = %q", cfg.Provider)
	}
	if sel := cfg.Selected(); sel.APIKey != "sk-test" || sel.Model != "gpt-4.1-mini" {
		t.Errorf("selected = %+v", sel)
	}
	if cfg.Gemini.BaseURL != "http://localhost:9" {
		t.Errorf("gemini base url = %q", cfg.Gemini.BaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		provider string
		wantErr  string
	}{
		{ProviderMock, ""},
		{ProviderAnthropic, "MEDCONNECT_ANTHROPIC_API_KEY"},
		{ProviderOpenRouter, "MEDCONNECT_OPENROUTER_API_KEY"},
		{"llama", "unknown LLM provider"},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Provider = tt.provider
		err := cfg.Validate()
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("%s: %v", tt.provider, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: err = %v, want %q", tt.provider, err, tt.wantErr)
		}
	}
}

func clearKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MEDCONNECT_LLM_PROVIDER", "ANTHROPIC_API_KEY", "OPENAI_API_KEY",
		"GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearKeys(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("nothing set, nothing discovered")
	}
	if _, err := ResolveConfig(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("ResolveConfig: %v", err)
	}

	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("OPENAI_API_KEY", "o")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "o" {
		t.Errorf("got %q ok=%v", cfg.Provider, ok)
	}

	t.Setenv("MEDCONNECT_LLM_PROVIDER", "mock")
	cfg, err := ResolveConfig()
	if err != nil || cfg.Provider != ProviderMock {
		t.Errorf("explicit provider should win: %q %v", cfg.Provider, err)
	}
}

func TestLookupCost(t *testing.T) {
	if c := LookupCost("gpt-4o-mini"); c == nil || c.Cost(1_000_000, 1_000_000) != 0.75 {
		t.Errorf("gpt-4o-mini cost = %+v", c)
	}
	if LookupCost("google/gemini-2.0-flash-001") == nil {
		t.Error("vendor prefix should be stripped")
	}
	if LookupCost("made-up") != nil {
		t.Error("unknown model priced")
	}
}

type recordingRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, d)
	return r.err
}

func TestLoggingProviderRecordsEvents(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(
		MockResponse{Text: "Beta blockers slow the rate.", Usage: Usage{InputTokens: 7, OutputTokens: 9}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, ProviderMock, repo, nil)

	ctx := WithPurpose(context.Background(), PurposeChat)
	if _, err := p.Generate(ctx, Request{System: "be brief", Messages: []Message{UserMessage("beta blockers?")}}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected failure")
	}

	if len(repo.events) != 2 {
		t.Fatalf("events = %d", len(repo.events))
	}
	ok, bad := repo.events[0], repo.events[1]
	if !ok.Success || ok.Purpose != PurposeChat || ok.Provider != ProviderMock || ok.OutputTokens != 9 {
		t.Errorf("ok event = %+v", ok)
	}
	if !strings.Contains(ok.RequestBody, "[system]\nbe brief") || ok.ResponseBody != "Beta blockers slow the rate." {
		t.Errorf("bodies = %q / %q", ok.RequestBody, ok.ResponseBody)
	}
	if bad.Success || bad.Purpose != "unknown" || !strings.Contains(bad.ErrorMessage, "down") {
		t.Errorf("bad event = %+v", bad)
	}
}

func TestLoggingFailureDoesNotFailRequest(t *testing.T) {
	var buf bytes.Buffer
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockResponse{Text: "ok"}), ProviderMock, repo, slog.New(slog.NewTextHandler(&buf, nil)))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil || resp.Text != "ok" {
		t.Fatalf("resp=%v err=%v", resp, err)
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("warning not logged: %s", buf.String())
	}
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v", err)
	}
	if WithTimeout(slowProvider{}, 0) != (slowProvider{}) {
		t.Error("zero timeout should return the provider unchanged")
	}
}

func TestNewProviderMockAndLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	repo := &recordingRepo{}
	p, err := NewProvider(context.Background(), cfg, repo, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("model = %q", p.ModelID())
	}

	cfg.Provider = ProviderAnthropic
	if _, err := NewProvider(context.Background(), cfg, nil, nil); err == nil {
		t.Error("missing key should fail")
	}
}
