package account

import (
	"strings"
	"testing"

	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/screens/screenstest"
	"github.com/saketh8887/medconnect/internal/store"
)

func TestProfileShowsUser(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	p := NewProfile(env.Deps)

	view := p.View(160, 40)
	for _, want := range []string{"Sarah Sharma", "MBBS Phase III", "B+", "8.5", "Student"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestProfileWithoutUser(t *testing.T) {
	env := screenstest.New(t, "")
	if !strings.Contains(NewProfile(env.Deps).View(100, 30), "Not signed in") {
		t.Error("expected signed-out notice")
	}
}

func TestSettingsListsPreferences(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	s := NewSettings(env.Deps)

	for _, m := range screenstest.Run(s.Init()) {
		s.Update(m)
	}
	view := s.View(120, 40)
	for _, want := range []string{store.PrefCurrentUser, "u1 (session)", "Light", "Not configured"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSettingsToggleAsksRootModel(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	s := NewSettings(env.Deps)

	_, cmd := screenstest.Send(s, "t")
	msgs := screenstest.Run(cmd)
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if _, ok := msgs[0].(screens.ToggleDarkModeMsg); !ok {
		t.Errorf("first message %T, want ToggleDarkModeMsg", msgs[0])
	}
	if _, ok := msgs[1].(prefsMsg); !ok {
		t.Errorf("second message %T, want prefsMsg", msgs[1])
	}
}
