package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		schema    *Schema
		wantErr   bool
		wantCalls int
	}{
		{"first attempt", []MockResponse{{Text: "ok"}}, nil, false, 1},
		{"transient then success", []MockResponse{down(), {Text: "ok"}}, nil, false, 2},
		{"all attempts fail", []MockResponse{down(), down(), down(), {Text: "never"}}, nil, true, 3},
		{"rate limit retried", []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond}}, {Text: "ok"}}, nil, false, 2},
		{"max tokens is final", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, {Text: "ok"}}, nil, true, 1},
		{"schema miss retried once", []MockResponse{{Text: `{}`}, {Text: `{"name":"a","age":1}`}}, testSchema(), false, 2},
		{"schema miss twice gives up", []MockResponse{{Text: `{}`}, {Text: `[]`}, {Text: `{"name":"a","age":1}`}}, testSchema(), true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{Schema: tt.schema})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetry_ContextCancelledDuringBackoff(t *testing.T) {
	mock := NewMockProvider(down(), down())
	cfg := fastRetry()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d", mock.CallCount())
	}
}

func TestRetry_BackoffIsCappedWithJitter(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{InitialWait: time.Second, MaxWait: 4 * time.Second, Multiplier: 2}}
	for attempt := range 6 {
		w := r.backoff(attempt, errors.New("x"))
		if w < 0 || w > 4*time.Second*12/10 {
			t.Errorf("attempt %d: wait %s out of range", attempt, w)
		}
	}
	if w := r.backoff(0, &ErrRateLimit{RetryAfter: 7 * time.Second}); w != 7*time.Second {
		t.Errorf("RetryAfter ignored: %s", w)
	}
}

func TestRetry_ZeroAttemptsStillCallsOnce(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})
	if _, err := WithRetry(mock, RetryConfig{}).Generate(context.Background(), Request{}); err != nil {
		t.Fatal(err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d", mock.CallCount())
	}
}
