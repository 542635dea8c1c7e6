package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	caps    Capabilities
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { s.updates++; return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

// stubRegistry registers every view with a stub whose title is the view id.
func stubRegistry(needs Capability) (Registry, map[ViewID]int) {
	built := map[ViewID]int{}
	reg := Registry{}
	for _, v := range AllViews() {
		v := v
		reg[v] = Entry{
			Needs: needs,
			Factory: func(c Capabilities) screen.Screen {
				built[v]++
				return &stubScreen{title: string(v), caps: c}
			},
		}
	}
	return reg, built
}

func TestNavigateReachesEveryView(t *testing.T) {
	s := NewState(120, DefaultBreakpoint)
	for _, v := range AllViews() {
		s = s.Navigate(v)
		if s.View != v {
			t.Errorf("navigate(%s): got view %s", v, s.View)
		}
	}
}

func TestNavigateUnknownFallsBackToDashboard(t *testing.T) {
	s := NewState(120, DefaultBreakpoint).Navigate(ViewFees)
	s = s.Navigate(ViewID("nonexistent"))
	if s.View != ViewDashboard {
		t.Errorf("expected dashboard, got %s", s.View)
	}
}

func TestNavigateOnNarrowClosesSidebar(t *testing.T) {
	s := NewState(60, DefaultBreakpoint).SetSidebar(true)
	for _, v := range AllViews() {
		s = s.SetSidebar(true).Navigate(v)
		if s.SidebarOpen {
			t.Errorf("navigate(%s) on narrow viewport left sidebar open", v)
		}
	}
}

func TestNavigateOnWideKeepsSidebar(t *testing.T) {
	s := NewState(140, DefaultBreakpoint)
	if !s.SidebarOpen {
		t.Fatal("wide viewport should start with sidebar open")
	}
	s = s.Navigate(ViewLibrary)
	if !s.SidebarOpen {
		t.Error("navigate on wide viewport should keep sidebar open")
	}
	s = s.ToggleSidebar().Navigate(ViewHostel)
	if s.SidebarOpen {
		t.Error("navigate on wide viewport should keep a manually closed sidebar closed")
	}
}

func TestResizeCrossingBreakpointOverridesToggle(t *testing.T) {
	s := NewState(140, DefaultBreakpoint).ToggleSidebar()
	if s.SidebarOpen {
		t.Fatal("toggle should close the sidebar")
	}

	s = s.Resize(130)
	if s.SidebarOpen {
		t.Error("resize within the wide range should keep manual state")
	}

	s = s.Resize(80)
	if s.SidebarOpen {
		t.Error("crossing to narrow should close the sidebar")
	}

	s = s.ToggleSidebar().Resize(90)
	if !s.SidebarOpen {
		t.Error("resize within the narrow range should keep manual state")
	}

	s = s.ToggleSidebar().Resize(DefaultBreakpoint)
	if !s.SidebarOpen {
		t.Error("crossing to wide should open the sidebar")
	}
}

func TestNewStateDefaultsBreakpoint(t *testing.T) {
	s := NewState(0, 0)
	if s.Breakpoint != DefaultBreakpoint {
		t.Errorf("expected breakpoint %d, got %d", DefaultBreakpoint, s.Breakpoint)
	}
	if s.View != ViewDashboard || s.SidebarOpen {
		t.Errorf("unexpected initial state %+v", s)
	}
}

func TestParseView(t *testing.T) {
	tests := []struct {
		in   string
		want ViewID
	}{
		{"inquiries", ViewInquiries},
		{"database", ViewDatabase},
		{"", ViewDashboard},
		{"Dashboard", ViewDashboard},
		{"admin", ViewDashboard},
	}
	for _, tt := range tests {
		if got := ParseView(tt.in); got != tt.want {
			t.Errorf("ParseView(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if len(AllViews()) != 14 {
		t.Errorf("expected 14 views, got %d", len(AllViews()))
	}
}

func TestShowBuildsOnceAndRunsInit(t *testing.T) {
	reg, built := stubRegistry(CapNavigate)
	r := New(reg)

	r.Show(ViewSubjects, theme.Default())
	if r.Current() != ViewSubjects {
		t.Fatalf("expected subjects, got %s", r.Current())
	}
	stub := r.Active().(*stubScreen)
	if !stub.initRan {
		t.Error("expected Init() to run on built screen")
	}

	r.Show(ViewSubjects, theme.Default())
	if built[ViewSubjects] != 1 {
		t.Errorf("same view should not rebuild, built %d times", built[ViewSubjects])
	}

	r.Show(ViewLibrary, theme.Default())
	if r.Active().Title() != string(ViewLibrary) {
		t.Errorf("expected library, got %s", r.Active().Title())
	}
}

func TestShowFallsBackToDashboard(t *testing.T) {
	reg, _ := stubRegistry(0)
	delete(reg, ViewFees)
	r := New(reg)

	r.Show(ViewFees, theme.Default())
	if r.Current() != ViewDashboard {
		t.Errorf("expected dashboard fallback, got %s", r.Current())
	}
}

func TestShowWithoutDashboardLeavesNoScreen(t *testing.T) {
	r := New(Registry{})
	if cmd := r.Show(ViewFees, theme.Default()); cmd != nil {
		t.Error("expected nil cmd")
	}
	if r.Active() != nil {
		t.Error("expected no active screen")
	}
	if r.View(80, 24) != "" {
		t.Error("expected empty view")
	}
}

func TestCapabilitiesAreMinimal(t *testing.T) {
	reg, _ := stubRegistry(CapBackToDashboard)
	r := New(reg)
	r.Show(ViewFees, theme.Default())

	caps := r.Active().(*stubScreen).caps
	if caps.Navigate != nil {
		t.Error("navigate should not be granted")
	}
	if caps.BackToDashboard == nil {
		t.Fatal("back-to-dashboard should be granted")
	}
	if caps.Theme.Name != "" {
		t.Error("theme should not be granted")
	}
	if _, ok := caps.BackToDashboard()().(BackToDashboardMsg); !ok {
		t.Error("back-to-dashboard should emit BackToDashboardMsg")
	}
}

func TestThemedViewRebuildsOnThemeChange(t *testing.T) {
	reg, built := stubRegistry(CapTheme | CapNavigate)
	r := New(reg)

	r.Show(ViewDashboard, theme.Default())
	r.Show(ViewDashboard, theme.Default())
	if built[ViewDashboard] != 1 {
		t.Fatalf("expected one build, got %d", built[ViewDashboard])
	}

	yellow := theme.Default()
	yellow.Name = theme.NameYellow
	r.Show(ViewDashboard, yellow)
	if built[ViewDashboard] != 2 {
		t.Errorf("theme change should rebuild themed view, got %d builds", built[ViewDashboard])
	}
	caps := r.Active().(*stubScreen).caps
	if caps.Theme.Name != theme.NameYellow {
		t.Errorf("expected yellow theme, got %q", caps.Theme.Name)
	}
	msg := caps.Navigate(ViewNotices)()
	if nav, ok := msg.(NavigateMsg); !ok || nav.View != ViewNotices {
		t.Errorf("unexpected navigate msg %#v", msg)
	}
}

func TestUpdateForwardsAndResetDrops(t *testing.T) {
	reg, built := stubRegistry(0)
	r := New(reg)
	r.Show(ViewHostel, theme.Default())

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if r.Active().(*stubScreen).updates != 1 {
		t.Error("expected update forwarded to active screen")
	}

	r.Reset()
	if r.Active() != nil || r.Current() != "" {
		t.Error("reset should drop the active screen")
	}
	if r.Update(tea.KeyPressMsg{}) != nil {
		t.Error("update with no screen should be a no-op")
	}

	r.Show(ViewHostel, theme.Default())
	if built[ViewHostel] != 2 {
		t.Errorf("show after reset should rebuild, got %d builds", built[ViewHostel])
	}
}
