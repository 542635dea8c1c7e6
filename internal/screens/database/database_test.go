package database

import (
	"strings"
	"testing"

	"github.com/saketh8887/medconnect/internal/screens/screenstest"
)

func TestAdminSeesUsers(t *testing.T) {
	env := screenstest.New(t, screenstest.AdminEmail)
	d := New(env.Deps)

	if !strings.Contains(d.View(140, 40), "Loading") {
		t.Error("expected loading state before Init runs")
	}
	for _, m := range screenstest.Run(d.Init()) {
		d.Update(m)
	}

	if len(d.users) != 2 {
		t.Fatalf("loaded %d users, want 2", len(d.users))
	}
	view := d.View(140, 40)
	for _, want := range []string{"Sarah Sharma", "2 accounts · 1 students", "never"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRefreshReloads(t *testing.T) {
	env := screenstest.New(t, screenstest.AdminEmail)
	d := New(env.Deps)

	_, cmd := screenstest.Send(d, "r")
	msgs := screenstest.Run(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if _, ok := msgs[0].(usersMsg); !ok {
		t.Errorf("got %T, want usersMsg", msgs[0])
	}
}

func TestStudentIsDenied(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	d := New(env.Deps)

	if d.Init() != nil {
		t.Error("students should not load users")
	}
	view := d.View(100, 30)
	if !strings.Contains(view, "Access restricted") {
		t.Error("expected access notice")
	}
	if strings.Contains(view, "admin@medconnect.edu") {
		t.Error("user data leaked to a student")
	}
}
