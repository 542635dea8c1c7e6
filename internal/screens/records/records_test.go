package records

import (
	"strings"
	"testing"

	"github.com/saketh8887/medconnect/internal/screens/screenstest"
)

func TestRupees(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{150000, "₹1,50,000"},
		{12345678, "₹1,23,45,678"},
		{-2500, "-₹2,500"},
	}
	for _, tt := range tests {
		if got := Rupees(tt.in); got != tt.want {
			t.Errorf("Rupees(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestViewsRenderCatalogRows(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)

	tests := []struct {
		name  string
		build func() *TableScreen
		title string
		rows  int
		want  []string
	}{
		{"library", func() *TableScreen { return NewLibrary(env.Deps) }, "Library", 6, []string{"Gray's Anatomy", "3 books"}},
		{"clinical", func() *TableScreen { return NewClinical(env.Deps) }, "Clinical Duties", 1, []string{"General Medicine"}},
		{"calendar", func() *TableScreen { return NewCalendar(env.Deps) }, "Academic Calendar", 1, []string{"Final Prof Examinations", "1 upcoming"}},
		{"hostel", func() *TableScreen { return NewHostel(env.Deps) }, "Hostel", 7, []string{"D-304", "Ananya Iyer", "Omelette"}},
		{"notices", func() *TableScreen { return NewNotices(env.Deps) }, "Notice Board", 1, []string{"Outreach Clinic"}},
		{"fees", func() *TableScreen { return NewFees(env.Deps) }, "Fees", 1, []string{"₹1,50,000", "No dues"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.build()
			if r.Title() != tt.title {
				t.Errorf("title = %q, want %q", r.Title(), tt.title)
			}
			if len(r.Rows()) != tt.rows {
				t.Errorf("rows = %d, want %d", len(r.Rows()), tt.rows)
			}
			view := r.View(140, 40)
			for _, w := range tt.want {
				if !strings.Contains(view, w) {
					t.Errorf("view missing %q", w)
				}
			}
		})
	}
}

func TestTableScrolls(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	r := NewHostel(env.Deps)

	screenstest.Send(r, "down", "down")
	if r.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", r.Cursor())
	}
	screenstest.Send(r, "up")
	if r.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", r.Cursor())
	}
}
