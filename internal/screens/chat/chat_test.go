package chat

import (
	"errors"
	"strings"
	"testing"

	"github.com/saketh8887/medconnect/internal/assistant"
	"github.com/saketh8887/medconnect/internal/llm"
	"github.com/saketh8887/medconnect/internal/screens/screenstest"
)

func newPanel(t *testing.T, responses ...llm.MockResponse) (*Panel, *llm.MockProvider) {
	t.Helper()
	env := screenstest.New(t, screenstest.StudentEmail)
	mock := llm.NewMockProvider(responses...)
	env.Deps.Assistant = assistant.NewService(mock, env.Deps.Catalog, assistant.DefaultConfig())
	p := New(env.Deps)
	p.SetSize(80, 30)
	return p, mock
}

func TestAskAndReply(t *testing.T) {
	p, mock := newPanel(t, llm.MockResponse{Text: "Preload is the end-diastolic stretch."})

	screenstest.Type(p, "What is preload?")
	_, cmd := screenstest.Send(p, "enter")
	if !p.Waiting() {
		t.Fatal("expected waiting state")
	}
	if p.input.Value() != "" {
		t.Error("input should clear after sending")
	}

	reply, ok := screenstest.Find[replyMsg](cmd)
	if !ok {
		t.Fatal("expected replyMsg")
	}
	p.Update(reply)

	turns := p.Turns()
	if len(turns) != 2 {
		t.Fatalf("turns = %d, want 2", len(turns))
	}
	if turns[0].Role != llm.RoleUser || turns[1].Role != llm.RoleAssistant {
		t.Errorf("roles = %q, %q", turns[0].Role, turns[1].Role)
	}
	if !strings.Contains(p.View(80, 30), "end-diastolic") {
		t.Error("reply not rendered")
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestHistoryIsSentOnFollowUp(t *testing.T) {
	p, mock := newPanel(t,
		llm.MockResponse{Text: "First answer."},
		llm.MockResponse{Text: "Second answer."},
	)

	for _, q := range []string{"first question", "second question"} {
		screenstest.Type(p, q)
		_, cmd := screenstest.Send(p, "enter")
		reply, _ := screenstest.Find[replyMsg](cmd)
		p.Update(reply)
	}

	last, ok := mock.LastCall()
	if !ok {
		t.Fatal("no calls recorded")
	}
	if len(last.Messages) != 3 {
		t.Fatalf("sent %d messages, want 3 (two history + question)", len(last.Messages))
	}
	if last.Messages[2].Content != "second question" {
		t.Errorf("last message = %q", last.Messages[2].Content)
	}
}

func TestFailureBecomesAssistantTurn(t *testing.T) {
	p, _ := newPanel(t, llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}})

	screenstest.Type(p, "anything")
	_, cmd := screenstest.Send(p, "enter")
	reply, _ := screenstest.Find[replyMsg](cmd)
	p.Update(reply)

	turns := p.Turns()
	if len(turns) != 2 || !strings.Contains(turns[1].Text, "too many requests") {
		t.Fatalf("turns = %+v", turns)
	}
	if p.Waiting() {
		t.Error("waiting should clear after a failure")
	}
}

func TestEmptyQuestionAndEsc(t *testing.T) {
	p, _ := newPanel(t)

	if _, cmd := screenstest.Send(p, "enter"); cmd != nil {
		t.Error("empty question should not be sent")
	}
	_, cmd := screenstest.Send(p, "esc")
	if _, ok := screenstest.Find[CloseMsg](cmd); !ok {
		t.Error("esc should close the panel")
	}
}

func TestNotConfigured(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	p := New(env.Deps)

	screenstest.Type(p, "hello")
	if _, cmd := screenstest.Send(p, "enter"); cmd != nil {
		t.Error("no request without a provider")
	}
	if !strings.Contains(p.View(80, 30), "not configured") {
		t.Error("expected not-configured notice")
	}
}
