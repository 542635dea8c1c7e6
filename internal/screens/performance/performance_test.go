package performance

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/saketh8887/medconnect/internal/assistant"
	"github.com/saketh8887/medconnect/internal/llm"
	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/screens/screenstest"
)

const feedbackJSON = `{
	"weakSpots": ["Valve recognition speed"],
	"masteredAreas": ["Conduction basics"],
	"actionPlan": ["Repeat the valve task"],
	"focusTopics": ["Heart Valves & Mechanics"],
	"encouragement": "Steady progress, keep going."
}`

func TestHistoryLoads(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	ctx := context.Background()
	for range 7 {
		if err := env.Store.LogStudyTime(ctx, 0.5); err != nil {
			t.Fatal(err)
		}
	}

	p := New(env.Deps, router.Capabilities{})
	for _, m := range screenstest.Run(p.Init()) {
		p.Update(m)
	}
	if p.hours != 3.5 {
		t.Errorf("hours = %v, want 3.5", p.hours)
	}
	if len(p.sessions) != recentSessions {
		t.Errorf("kept %d sessions, want %d", len(p.sessions), recentSessions)
	}
	view := p.View(120, 60)
	for _, want := range []string{"3.5 h", "30 min", "Valve Recognition", "Cardiology"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFeedbackWithoutProvider(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	p := New(env.Deps, router.Capabilities{})

	_, cmd := screenstest.Send(p, "f")
	if cmd != nil {
		t.Error("expected no request without a provider")
	}
	if !strings.Contains(p.View(120, 60), "not configured") {
		t.Error("expected not-configured notice")
	}
}

func TestFeedbackRendered(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(feedbackJSON)})
	env.Deps.Assistant = assistant.NewService(mock, env.Deps.Catalog, assistant.DefaultConfig())
	p := New(env.Deps, router.Capabilities{})

	_, cmd := screenstest.Send(p, "f")
	if !p.loading {
		t.Fatal("expected loading state")
	}
	if _, again := screenstest.Send(p, "f"); again != nil {
		t.Error("second request while loading should be ignored")
	}

	fb, ok := screenstest.Find[feedbackMsg](cmd)
	if !ok {
		t.Fatal("expected feedbackMsg")
	}
	if fb.err != nil {
		t.Fatalf("feedback: %v", fb.err)
	}
	p.Update(fb)

	view := p.View(120, 80)
	for _, want := range []string{"Valve recognition speed", "Repeat the valve task", "Steady progress"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestFeedbackFailureSetsStatus(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	env.Deps.Assistant = assistant.NewService(llm.NewMockProvider(), env.Deps.Catalog, assistant.DefaultConfig())
	p := New(env.Deps, router.Capabilities{})

	_, cmd := screenstest.Send(p, "f")
	fb, ok := screenstest.Find[feedbackMsg](cmd)
	if !ok {
		t.Fatal("expected feedbackMsg")
	}
	_, cmd = p.Update(fb)
	if _, ok := screenstest.Find[screens.StatusMsg](cmd); !ok {
		t.Error("expected a status message")
	}
	if !strings.Contains(p.View(120, 60), "Press f to retry") {
		t.Error("expected retry hint")
	}
}
