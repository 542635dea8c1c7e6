package dashboard

import (
	"context"
	"strings"
	"testing"

	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/screens/screenstest"
)

func TestQuickLinkNavigates(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	d := New(env.Deps, router.Capabilities{Navigate: router.Navigate})

	_, cmd := screenstest.Send(d, "down", "enter")
	msg, ok := screenstest.Find[router.NavigateMsg](cmd)
	if !ok {
		t.Fatal("expected NavigateMsg")
	}
	if msg.View != router.ViewLibrary {
		t.Errorf("navigated to %q, want library", msg.View)
	}
}

func TestWithoutNavigateLinksAreInert(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	d := New(env.Deps, router.Capabilities{})

	_, cmd := screenstest.Send(d, "enter")
	if msgs := screenstest.Run(cmd); len(msgs) != 0 {
		t.Errorf("expected no messages, got %v", msgs)
	}
}

func TestStudyHoursLoadIntoStats(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	if err := env.Store.LogStudyTime(context.Background(), 1.5); err != nil {
		t.Fatal(err)
	}

	d := New(env.Deps, router.Capabilities{Navigate: router.Navigate})
	if !strings.Contains(d.View(120, 40), "…") {
		t.Error("expected placeholder before stats load")
	}

	for _, m := range screenstest.Run(d.Init()) {
		d.Update(m)
	}
	view := d.View(120, 40)
	if !strings.Contains(view, "1.5 h") {
		t.Error("expected study hours in view")
	}
	if !strings.Contains(view, "Welcome back, Sarah") {
		t.Error("expected greeting with first name")
	}
	if !strings.Contains(view, "0 / 15") {
		t.Error("expected topic progress out of 15")
	}
}

func TestInitWithoutUserIsNoop(t *testing.T) {
	env := screenstest.New(t, "")
	d := New(env.Deps, router.Capabilities{Navigate: router.Navigate})
	if d.Init() != nil {
		t.Error("expected nil init without a session")
	}
}
