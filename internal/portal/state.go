// Package portal holds the top-level UI state and the reducer that changes
// it. The reducer is pure so the navigation and session rules can be tested
// without a terminal.
package portal

import (
	"github.com/saketh8887/medconnect/internal/profile"
	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

// State is everything the root controller renders from.
type State struct {
	User   *profile.UserProfile
	Dark   bool
	Nav    router.State
	Status string
}

// New returns the signed-out state for a viewport width.
func New(width, breakpoint int) State {
	return State{Nav: router.NewState(width, breakpoint)}
}

// Authenticated reports whether a user is signed in.
func (s State) Authenticated() bool {
	return s.User != nil
}

// Theme resolves the accent theme for the current user.
func (s State) Theme() theme.Theme {
	return theme.Resolve(s.User)
}

// Palette returns the light or dark surfaces.
func (s State) Palette() theme.Palette {
	return theme.PaletteFor(s.Dark)
}

// Action is a typed state transition.
type Action interface {
	isAction()
}

type (
	// LoggedIn makes User the session user.
	LoggedIn struct{ User *profile.UserProfile }
	// LoggedOut clears the user and returns to the dashboard.
	LoggedOut struct{}
	// Navigated switches view.
	Navigated struct{ View router.ViewID }
	// SidebarToggled flips the sidebar.
	SidebarToggled struct{}
	// Resized records a new viewport width.
	Resized struct{ Width int }
	// DarkModeSet sets the light/dark flag.
	DarkModeSet struct{ Dark bool }
	// UserUpdated replaces the user after a profile change.
	UserUpdated struct{ User *profile.UserProfile }
	// StatusSet shows a message in the status bar.
	StatusSet struct{ Message string }
)

func (LoggedIn) isAction()       {}
func (LoggedOut) isAction()      {}
func (Navigated) isAction()      {}
func (SidebarToggled) isAction() {}
func (Resized) isAction()        {}
func (DarkModeSet) isAction()    {}
func (UserUpdated) isAction()    {}
func (StatusSet) isAction()      {}

// Reduce applies a to s. Users are cloned on the way in so the state never
// shares a profile reference with the caller.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case LoggedIn:
		s.User = a.User.Clone()
		s.Nav = s.Nav.Reset()
		s.Status = ""
	case LoggedOut:
		s.User = nil
		s.Nav = s.Nav.Reset()
	case Navigated:
		if s.User == nil {
			return s
		}
		s.Nav = s.Nav.Navigate(a.View)
	case SidebarToggled:
		s.Nav = s.Nav.ToggleSidebar()
	case Resized:
		s.Nav = s.Nav.Resize(a.Width)
	case DarkModeSet:
		s.Dark = a.Dark
	case UserUpdated:
		if s.User == nil || a.User == nil || a.User.ID != s.User.ID {
			return s
		}
		s.User = a.User.Clone()
	case StatusSet:
		s.Status = a.Message
	}
	return s
}
