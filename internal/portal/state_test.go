package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saketh8887/medconnect/internal/profile"
	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

func student(year string) *profile.UserProfile {
	return &profile.UserProfile{ID: "u1", Name: "Sarah", Role: profile.RoleStudent, Email: "s@x.edu", Year: year}
}

func TestLoginLogoutCycle(t *testing.T) {
	s := New(120, router.DefaultBreakpoint)
	require.False(t, s.Authenticated())
	assert.Equal(t, theme.NameBlue, s.Theme().Name)

	s = Reduce(s, LoggedIn{User: student("MBBS Phase II")})
	require.True(t, s.Authenticated())
	assert.Equal(t, theme.NameYellow, s.Theme().Name)

	s = Reduce(s, Navigated{View: router.ViewFees})
	assert.Equal(t, router.ViewFees, s.Nav.View)

	s = Reduce(s, LoggedOut{})
	assert.False(t, s.Authenticated())
	assert.Equal(t, router.ViewDashboard, s.Nav.View)
	assert.Equal(t, theme.NameBlue, s.Theme().Name)
}

func TestNavigationRequiresUser(t *testing.T) {
	s := New(120, router.DefaultBreakpoint)
	s = Reduce(s, Navigated{View: router.ViewDatabase})
	assert.Equal(t, router.ViewDashboard, s.Nav.View)
}

func TestUnknownViewFallsBack(t *testing.T) {
	s := Reduce(New(120, 0), LoggedIn{User: student("")})
	s = Reduce(s, Navigated{View: router.ViewHostel})
	s = Reduce(s, Navigated{View: "warp-drive"})
	assert.Equal(t, router.ViewDashboard, s.Nav.View)
}

func TestNarrowNavigationClosesSidebar(t *testing.T) {
	s := Reduce(New(70, router.DefaultBreakpoint), LoggedIn{User: student("")})
	for _, v := range router.AllViews() {
		s = Reduce(s, SidebarToggled{})
		if !s.Nav.SidebarOpen {
			s = Reduce(s, SidebarToggled{})
		}
		require.True(t, s.Nav.SidebarOpen)
		s = Reduce(s, Navigated{View: v})
		assert.False(t, s.Nav.SidebarOpen, "after navigating to %s", v)
	}
}

func TestResizeCrossingOverridesManualToggle(t *testing.T) {
	s := Reduce(New(150, router.DefaultBreakpoint), LoggedIn{User: student("")})
	s = Reduce(s, SidebarToggled{})
	require.False(t, s.Nav.SidebarOpen)

	s = Reduce(s, Resized{Width: 140})
	assert.False(t, s.Nav.SidebarOpen, "same side keeps manual state")

	s = Reduce(s, Resized{Width: 60})
	s = Reduce(s, Resized{Width: 160})
	assert.True(t, s.Nav.SidebarOpen, "crossing to wide opens")
}

func TestThemeFollowsUserUpdates(t *testing.T) {
	s := Reduce(New(120, 0), LoggedIn{User: student("MBBS Phase I")})
	assert.Equal(t, theme.NameBlue, s.Theme().Name)

	promoted := s.User.Clone()
	promoted.Year = "MBBS Phase II"
	s = Reduce(s, UserUpdated{User: promoted})
	assert.Equal(t, theme.NameYellow, s.Theme().Name)

	// Mutating the caller's copy does not leak into state.
	promoted.Year = "MBBS Phase I"
	assert.Equal(t, theme.NameYellow, s.Theme().Name)

	// Updates for someone else are ignored.
	other := student("MBBS Phase I")
	other.ID = "u2"
	s = Reduce(s, UserUpdated{User: other})
	assert.Equal(t, "MBBS Phase II", s.User.Year)
}

func TestDarkModeAndStatus(t *testing.T) {
	s := New(120, 0)
	s = Reduce(s, DarkModeSet{Dark: true})
	assert.True(t, s.Palette().Dark)

	s = Reduce(s, StatusSet{Message: "saved"})
	assert.Equal(t, "saved", s.Status)

	s = Reduce(s, LoggedIn{User: student("")})
	assert.Empty(t, s.Status)
	assert.True(t, s.Dark, "dark mode survives login")
}
