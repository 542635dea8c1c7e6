package simulation

import (
	"strings"
	"testing"

	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/screens/screenstest"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

func newSim(t *testing.T) *SimulationScreen {
	t.Helper()
	env := screenstest.New(t, screenstest.StudentEmail)
	return New(env.Deps, router.Capabilities{
		BackToDashboard: router.BackToDashboard,
		Theme:           theme.Default(),
	})
}

func TestOpenTaskShowsStats(t *testing.T) {
	s := newSim(t)
	screenstest.Send(s, "enter")
	if !s.open || s.task.ID != "task1" {
		t.Fatalf("open=%v task=%q", s.open, s.task.ID)
	}

	view := s.View(120, 40)
	for _, want := range []string{"Valve Recognition", "60%", "4m0s", "Rotation 0°"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRotateAndZoom(t *testing.T) {
	s := newSim(t)
	screenstest.Send(s, "enter")

	tests := []struct {
		key      string
		rotation int
		zoom     int
	}{
		{"right", 45, 1},
		{"left", 0, 1},
		{"left", 315, 1},
		{"+", 315, 2},
		{"+", 315, 3},
		{"+", 315, 3},
		{"-", 315, 2},
		{"r", 0, 1},
		{"-", 0, 1},
	}
	for _, tt := range tests {
		screenstest.Send(s, tt.key)
		if s.rotation != tt.rotation || s.zoom != tt.zoom {
			t.Fatalf("after %q: rotation=%d zoom=%d, want %d/%d", tt.key, s.rotation, s.zoom, tt.rotation, tt.zoom)
		}
	}
}

func TestEscLeavesViewerThenDashboard(t *testing.T) {
	s := newSim(t)
	screenstest.Send(s, "enter")

	_, cmd := screenstest.Send(s, "esc")
	if s.open {
		t.Fatal("esc should close the viewer")
	}
	if cmd != nil {
		t.Fatal("closing the viewer should not navigate")
	}

	_, cmd = screenstest.Send(s, "esc")
	if _, ok := screenstest.Find[router.BackToDashboardMsg](cmd); !ok {
		t.Error("esc at the task list should go back to the dashboard")
	}
}

func TestMirrorKeepsLabelsReadable(t *testing.T) {
	if got := mirror(" /LA "); got != ` LA\ ` {
		t.Errorf("mirror = %q", got)
	}
}
