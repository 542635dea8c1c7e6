package login

import (
	"strings"
	"testing"

	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/screens/screenstest"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

func fill(t *testing.T, email, password string) (*LoginScreen, screen.Screen) {
	t.Helper()
	env := screenstest.New(t, "")
	l := New(env.Deps)
	var s screen.Screen = l
	s = screenstest.Type(s, email)
	s, _ = screenstest.Send(s, "tab")
	s = screenstest.Type(s, password)
	return l, s
}

func TestSignInSucceeds(t *testing.T) {
	l, s := fill(t, screenstest.StudentEmail, catalog.DefaultPassword)

	_, cmd := screenstest.Send(s, "enter")
	if !l.busy {
		t.Fatal("expected busy while authenticating")
	}

	msg, ok := screenstest.Find[screens.LoggedInMsg](cmd)
	if !ok {
		t.Fatal("expected LoggedInMsg")
	}
	if msg.User == nil || msg.User.ID != "u1" {
		t.Fatalf("logged in user = %+v, want u1", msg.User)
	}
}

func TestWrongPasswordShowsError(t *testing.T) {
	l, s := fill(t, screenstest.StudentEmail, "nope")

	s, cmd := screenstest.Send(s, "enter")
	msgs := screenstest.Run(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if _, ok := msgs[0].(loginFailedMsg); !ok {
		t.Fatalf("got %T, want loginFailedMsg", msgs[0])
	}

	s, _ = s.Update(msgs[0])
	if l.busy {
		t.Error("busy should clear after failure")
	}
	if l.password.Value() != "" {
		t.Error("password should be cleared after failure")
	}
	if l.focus != fieldPassword {
		t.Errorf("focus = %d, want password", l.focus)
	}
	if !strings.Contains(s.View(80, 30), "Invalid email or password") {
		t.Error("expected error in view")
	}
}

func TestEmptyFieldsAreRejectedLocally(t *testing.T) {
	env := screenstest.New(t, "")
	l := New(env.Deps)

	_, cmd := screenstest.Send(l, "tab", "enter")
	if cmd != nil {
		t.Fatal("expected no command for an empty form")
	}
	if l.email.Err() == "" || l.password.Err() == "" {
		t.Error("expected both fields to report an error")
	}
}

func TestFocusCycles(t *testing.T) {
	env := screenstest.New(t, "")
	l := New(env.Deps)

	order := []field{fieldPassword, fieldSubmit, fieldEmail}
	for _, want := range order {
		screenstest.Send(l, "tab")
		if l.focus != want {
			t.Fatalf("focus = %d, want %d", l.focus, want)
		}
	}

	screenstest.Send(l, "shift+tab")
	if l.focus != fieldSubmit {
		t.Errorf("shift+tab focus = %d, want submit", l.focus)
	}
	if !l.submit.Active {
		t.Error("submit button should be active when focused")
	}
}

func TestPasswordIsMasked(t *testing.T) {
	_, s := fill(t, screenstest.StudentEmail, "hunter2")
	if strings.Contains(s.View(80, 30), "hunter2") {
		t.Error("password leaked into the view")
	}
}

func TestBannerFallsBackWhenCramped(t *testing.T) {
	th := theme.Resolve(nil)
	if got := renderBanner(100, 40, th); !strings.Contains(got, "╔╦╗") {
		t.Errorf("wide banner = %q", got)
	}
	for _, size := range [][2]int{{30, 40}, {100, 20}} {
		if got := renderBanner(size[0], size[1], th); !strings.Contains(got, "MedConnect") {
			t.Errorf("banner at %v = %q", size, got)
		}
	}
}
