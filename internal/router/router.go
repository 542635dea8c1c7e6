package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

// NavigateMsg requests a switch to View.
type NavigateMsg struct {
	View ViewID
}

// BackToDashboardMsg requests a switch to the dashboard.
type BackToDashboardMsg struct{}

// ToggleSidebarMsg requests the sidebar to open or close.
type ToggleSidebarMsg struct{}

// Navigate returns a command that emits NavigateMsg.
func Navigate(v ViewID) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{View: v} }
}

// BackToDashboard returns a command that emits BackToDashboardMsg.
func BackToDashboard() tea.Cmd {
	return func() tea.Msg { return BackToDashboardMsg{} }
}

// ToggleSidebar returns a command that emits ToggleSidebarMsg.
func ToggleSidebar() tea.Cmd {
	return func() tea.Msg { return ToggleSidebarMsg{} }
}

// Capability is one callback or value a view may be handed.
type Capability uint8

const (
	CapNavigate Capability = 1 << iota
	CapBackToDashboard
	CapTheme
)

// Capabilities is what a view receives from the router. Only the fields
// granted by its registry entry are set.
type Capabilities struct {
	Navigate        func(ViewID) tea.Cmd
	BackToDashboard func() tea.Cmd
	Theme           theme.Theme
}

// Factory builds the screen for a view.
type Factory func(Capabilities) screen.Screen

// Entry binds a factory to the capabilities its view needs.
type Entry struct {
	Factory Factory
	Needs   Capability
}

func (e Entry) capabilities(th theme.Theme) Capabilities {
	var caps Capabilities
	if e.Needs&CapNavigate != 0 {
		caps.Navigate = Navigate
	}
	if e.Needs&CapBackToDashboard != 0 {
		caps.BackToDashboard = BackToDashboard
	}
	if e.Needs&CapTheme != 0 {
		caps.Theme = th
	}
	return caps
}

// Registry is the view lookup table. Adding a view means adding an entry.
type Registry map[ViewID]Entry

// Lookup returns the entry for v, falling back to the dashboard entry.
// The returned id is the view actually served.
func (r Registry) Lookup(v ViewID) (ViewID, Entry, bool) {
	if e, ok := r[v]; ok && e.Factory != nil {
		return v, e, true
	}
	e, ok := r[ViewDashboard]
	return ViewDashboard, e, ok && e.Factory != nil
}

// Router owns the screen for the active view and forwards messages to it.
// The navigation state itself lives with the caller.
type Router struct {
	registry  Registry
	view      ViewID
	themeName string
	active    screen.Screen
}

// New creates a Router with no active screen.
func New(registry Registry) *Router {
	return &Router{registry: registry}
}

// Show makes v the active view, building its screen when the view changes
// or when a themed view sees a new theme. Returns the new screen's Init.
func (r *Router) Show(v ViewID, th theme.Theme) tea.Cmd {
	id, entry, ok := r.registry.Lookup(v)
	if !ok {
		r.active = nil
		r.view = ""
		return nil
	}

	themed := entry.Needs&CapTheme != 0
	if r.active != nil && id == r.view && (!themed || th.Name == r.themeName) {
		return nil
	}

	r.view = id
	r.themeName = th.Name
	r.active = entry.Factory(entry.capabilities(th))
	return r.active.Init()
}

// Reset drops the active screen so the next Show rebuilds it.
func (r *Router) Reset() {
	r.active = nil
	r.view = ""
	r.themeName = ""
}

// Current returns the id of the screen being served.
func (r *Router) Current() ViewID {
	return r.view
}

// Active returns the active screen, or nil.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Update forwards a message to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
