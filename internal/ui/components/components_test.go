package components

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"

	"github.com/saketh8887/medconnect/internal/ui/theme"
)

func press(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

type pressed string

func TestMenuSkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Locked", Disabled: true},
		{Label: "Cardiology", Action: func() tea.Cmd { return func() tea.Msg { return pressed("cardio") } }},
		{Label: "Hidden", Disabled: true},
		{Label: "Neurology", Action: func() tea.Cmd { return func() tea.Msg { return pressed("neuro") } }},
	}, nil)

	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}
	m, _ = m.Update(press("down"))
	if m.Selected != 3 {
		t.Fatalf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(press("down"))
	if m.Selected != 3 {
		t.Errorf("down at the end moved to %d", m.Selected)
	}

	_, cmd := m.Update(press("enter"))
	if cmd == nil {
		t.Fatal("enter should run the action")
	}
	if got := cmd(); got != pressed("neuro") {
		t.Errorf("action msg = %v", got)
	}

	m, _ = m.Update(press("k"))
	if m.Selected != 1 {
		t.Errorf("k should move up to 1, got %d", m.Selected)
	}
}

func TestMenuViewMarksSelection(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "One"}, {Label: "Two", Detail: "2 chapters"}}, nil)
	out := m.View(theme.PaletteFor(false))
	if !strings.Contains(out, "▸ One") {
		t.Errorf("missing selection marker:\n%s", out)
	}
	if !strings.Contains(out, "2 chapters") {
		t.Errorf("missing detail:\n%s", out)
	}
}

func TestMultiChoiceLetterSubmits(t *testing.T) {
	mc := NewMultiChoice("Q?", []string{"w", "x", "y", "z"}, 2, nil)
	mc, _ = mc.Update(press("c"))
	if !mc.Submitted || mc.ChosenIndex != 2 || !mc.IsCorrect() {
		t.Fatalf("got %+v", mc)
	}

	mc, _ = mc.Update(press("a"))
	if mc.ChosenIndex != 2 {
		t.Error("answers are final once submitted")
	}
}

func TestMultiChoiceArrowsThenEnter(t *testing.T) {
	mc := NewMultiChoice("Q?", []string{"w", "x"}, 0, nil)
	mc, _ = mc.Update(press("down"))
	mc, _ = mc.Update(press("down"))
	if mc.Selected != 1 {
		t.Fatalf("selected = %d", mc.Selected)
	}
	mc, _ = mc.Update(press("enter"))
	if mc.IsCorrect() {
		t.Error("option B is wrong")
	}
	// Out-of-range digits are ignored.
	mc2 := NewMultiChoice("Q?", []string{"w", "x"}, 0, nil)
	mc2, _ = mc2.Update(press("4"))
	if mc2.Submitted {
		t.Error("4 should not submit a two-option question")
	}
}

func TestProgressBarClampsFill(t *testing.T) {
	pal := theme.PaletteFor(false)
	for _, pct := range []float64{-1, 0, 0.5, 1, 3} {
		out := NewProgressBar("", pct, false, 20, nil).View(pal)
		if out == "" {
			t.Errorf("empty bar for %v", pct)
		}
	}
	out := NewProgressBar("Cardiology", 0.4, true, 40, nil).View(pal)
	if !strings.Contains(out, "40%") || !strings.Contains(out, "Cardiology") {
		t.Errorf("bar = %q", out)
	}
}

func TestTextInputErrorClearsOnTyping(t *testing.T) {
	in := NewTextInput("Email", "you@college.edu", false, 30)
	in.Focus()
	in.SetError("required")
	if in.Err() == "" {
		t.Fatal("error not set")
	}
	in, _ = in.Update(press("a"))
	if in.Err() != "" {
		t.Error("typing should clear the error")
	}
	if in.Value() != "a" {
		t.Errorf("value = %q", in.Value())
	}
}

func TestSecretInputMasksValue(t *testing.T) {
	in := NewTextInput("Password", "", true, 30)
	in.Focus()
	for _, r := range "hunter2" {
		in, _ = in.Update(press(string(r)))
	}
	if in.Value() != "hunter2" {
		t.Fatalf("value = %q", in.Value())
	}
	if strings.Contains(in.View(theme.PaletteFor(true)), "hunter2") {
		t.Error("password echoed in clear")
	}
}

func TestButtonOnlyFiresWhenActive(t *testing.T) {
	fired := 0
	b := NewButton("Sign in", nil, func() tea.Cmd { fired++; return nil })
	b.Update(press("enter"))
	b.Active = true
	b.Update(press("enter"))
	if fired != 1 {
		t.Errorf("fired %d times", fired)
	}
}

func TestFitColumnsShrinks(t *testing.T) {
	cols := []table.Column{{Title: "A", Width: 40}, {Title: "B", Width: 40}}
	if got := FitColumns(cols, 200); got[0].Width != 40 {
		t.Errorf("wide table changed: %+v", got)
	}
	got := FitColumns(cols, 42)
	if got[0].Width+got[1].Width+4 > 42+4 {
		t.Errorf("columns not shrunk: %+v", got)
	}
	if cols[0].Width != 40 {
		t.Error("input slice mutated")
	}
}

func TestCardRowWraps(t *testing.T) {
	pal := theme.PaletteFor(false)
	c := StatCard("Hours", "12.5", theme.Primary, pal, 20)
	one := CardRow([]string{c, c}, 100)
	two := CardRow([]string{c, c}, 30)
	if strings.Count(two, "Hours") != 2 || strings.Count(one, "\n") >= strings.Count(two, "\n") {
		t.Errorf("expected wrap:\n%s\n--\n%s", one, two)
	}
}
