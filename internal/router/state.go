package router

// DefaultBreakpoint is the viewport width (terminal columns) at which the
// sidebar switches from drawer to docked.
const DefaultBreakpoint = 100

// State is the navigation state machine: the active view plus the sidebar
// flag. It holds no screens and can be driven without a renderer.
type State struct {
	View        ViewID
	SidebarOpen bool
	Width       int
	Breakpoint  int
}

// NewState starts at the dashboard with the sidebar open on wide viewports.
func NewState(width, breakpoint int) State {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return State{
		View:        ViewDashboard,
		SidebarOpen: width >= breakpoint,
		Width:       width,
		Breakpoint:  breakpoint,
	}
}

// Narrow reports whether the viewport is below the breakpoint.
func (s State) Narrow() bool {
	return s.Width < s.Breakpoint
}

// Navigate switches to v (unknown ids become the dashboard). On a narrow
// viewport the sidebar drawer is dismissed.
func (s State) Navigate(v ViewID) State {
	s.View = ParseView(string(v))
	if s.Narrow() {
		s.SidebarOpen = false
	}
	return s
}

// ToggleSidebar flips the sidebar flag.
func (s State) ToggleSidebar() State {
	s.SidebarOpen = !s.SidebarOpen
	return s
}

// SetSidebar sets the sidebar flag explicitly.
func (s State) SetSidebar(open bool) State {
	s.SidebarOpen = open
	return s
}

// Resize records a new width. Crossing the breakpoint forces the sidebar to
// match the new side; staying on the same side keeps any manual toggle.
func (s State) Resize(width int) State {
	wasWide := s.Width >= s.Breakpoint
	isWide := width >= s.Breakpoint
	s.Width = width
	if wasWide != isWide {
		s.SidebarOpen = isWide
	}
	return s
}

// Reset returns to the dashboard, keeping the sidebar and width.
func (s State) Reset() State {
	s.View = ViewDashboard
	return s
}
