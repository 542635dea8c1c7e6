package app

import (
	"context"
	"image/color"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/screens/chat"
	"github.com/saketh8887/medconnect/internal/screens/screenstest"
	"github.com/saketh8887/medconnect/internal/store"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newModel(t *testing.T, email string) (*AppModel, *screenstest.Env, *clock) {
	t.Helper()
	env := screenstest.New(t, email)
	clk := &clock{now: screenstest.Now}
	m := New(Options{Store: env.Store, Now: clk.Now})
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return m, env, clk
}

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func TestStartsSignedOut(t *testing.T) {
	m, _, _ := newModel(t, "")

	assert.False(t, m.State().Authenticated())
	assert.Equal(t, "Sign In", m.Active().Title())
	assert.Nil(t, m.router.Active())
	assert.Contains(t, m.frame(), "MedConnect")
}

func TestRestoresStoredSession(t *testing.T) {
	m, _, _ := newModel(t, screenstest.StudentEmail)

	require.True(t, m.State().Authenticated())
	assert.Equal(t, "u1", m.State().User.ID)
	assert.True(t, m.tracker.Active())
	assert.Equal(t, router.ViewDashboard, m.router.Current())
	assert.Equal(t, 1, m.epoch)
}

func TestLoggedInMsgStartsSession(t *testing.T) {
	m, env, _ := newModel(t, "")
	u, err := env.Store.Authenticate(context.Background(), screenstest.StudentEmail, catalog.DefaultPassword)
	require.NoError(t, err)

	m.Update(screens.LoggedInMsg{User: u})

	require.True(t, m.State().Authenticated())
	assert.Nil(t, m.login)
	assert.True(t, m.tracker.Active())
	assert.NotNil(t, m.router.Active())
}

func TestTickFlushesStudyTime(t *testing.T) {
	m, env, clk := newModel(t, screenstest.StudentEmail)
	ctx := context.Background()

	clk.now = clk.now.Add(3 * time.Minute)
	_, cmd := m.Update(tickMsg{epoch: m.epoch, at: clk.now})
	assert.NotNil(t, cmd, "live tick reschedules")

	hours, err := env.Store.TotalStudyHours(ctx, "u1")
	require.NoError(t, err)
	assert.InDelta(t, 3.0/60, hours, 1e-9)
}

func TestStaleTickIsDropped(t *testing.T) {
	m, env, clk := newModel(t, screenstest.StudentEmail)
	ctx := context.Background()
	before, err := env.Store.TotalStudyHours(ctx, "u1")
	require.NoError(t, err)

	clk.now = clk.now.Add(5 * time.Minute)
	_, cmd := m.Update(tickMsg{epoch: m.epoch - 1, at: clk.now})
	assert.Nil(t, cmd, "stale tick is not rescheduled")

	after, err := env.Store.TotalStudyHours(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLogoutFlushesAndClearsSession(t *testing.T) {
	m, env, clk := newModel(t, screenstest.StudentEmail)
	ctx := context.Background()
	epoch := m.epoch

	clk.now = clk.now.Add(30 * time.Second)
	m.Update(ctrl('l'))

	assert.False(t, m.State().Authenticated())
	assert.False(t, m.tracker.Active())
	assert.Nil(t, m.router.Active())
	assert.Equal(t, epoch+1, m.epoch)
	assert.Equal(t, router.ViewDashboard, m.State().Nav.View)

	u, err := env.Store.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	hours, err := env.Store.TotalStudyHours(ctx, "u1")
	require.NoError(t, err)
	assert.InDelta(t, 0.5/60, hours, 1e-9)

	// A tick from the ended session does nothing.
	_, cmd := m.Update(tickMsg{epoch: epoch})
	assert.Nil(t, cmd)
}

func TestToggleDarkModePersists(t *testing.T) {
	m, env, _ := newModel(t, screenstest.StudentEmail)
	ctx := context.Background()
	require.False(t, m.State().Dark)

	m.Update(ctrl('t'))
	assert.True(t, m.State().Dark)
	pref, err := env.Store.Preference(ctx, store.PrefTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", pref)

	m.Update(screens.ToggleDarkModeMsg{})
	assert.False(t, m.State().Dark)
	pref, err = env.Store.Preference(ctx, store.PrefTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", pref)
}

func TestTerminalBackgroundOnlyWithoutPreference(t *testing.T) {
	black := tea.BackgroundColorMsg{Color: color.Black}

	m, env, _ := newModel(t, "")
	m.Update(black)
	assert.True(t, m.State().Dark)

	require.NoError(t, env.Store.SetPreference(context.Background(), store.PrefTheme, "light"))
	m2 := New(Options{Store: env.Store})
	m2.Init()
	m2.Update(black)
	assert.False(t, m2.State().Dark)
}

func TestNavigation(t *testing.T) {
	m, _, _ := newModel(t, screenstest.StudentEmail)

	m.Update(router.NavigateMsg{View: router.ViewFees})
	assert.Equal(t, router.ViewFees, m.router.Current())

	m.Update(screenstest.Press("]"))
	assert.Equal(t, router.ViewPerformance, m.State().Nav.View)
	m.Update(screenstest.Press("["))
	m.Update(screenstest.Press("["))
	assert.Equal(t, router.ViewNotices, m.State().Nav.View)

	m.Update(router.BackToDashboardMsg{})
	assert.Equal(t, router.ViewDashboard, m.router.Current())

	m.Update(screenstest.Press("["))
	assert.Equal(t, router.ViewInquiries, m.State().Nav.View)
}

func TestSidebarFollowsBreakpoint(t *testing.T) {
	m, _, _ := newModel(t, screenstest.StudentEmail)
	require.True(t, m.State().Nav.SidebarOpen)

	m.Update(ctrl('b'))
	assert.False(t, m.State().Nav.SidebarOpen)

	m.Update(tea.WindowSizeMsg{Width: 130, Height: 40})
	assert.False(t, m.State().Nav.SidebarOpen, "same side keeps the manual toggle")

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.False(t, m.State().Nav.SidebarOpen)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.True(t, m.State().Nav.SidebarOpen, "crossing the breakpoint forces it open")

	m.Update(router.ToggleSidebarMsg{})
	assert.False(t, m.State().Nav.SidebarOpen)
}

func TestChatOverlay(t *testing.T) {
	m, _, _ := newModel(t, screenstest.StudentEmail)

	m.Update(ctrl('a'))
	require.True(t, m.chatOpen)
	assert.Equal(t, "AI Assistant", m.Active().Title())
	assert.Contains(t, m.frame(), "not configured")

	// Keys go to the panel, not the view switcher.
	m.Update(screenstest.Press("]"))
	assert.Equal(t, router.ViewDashboard, m.State().Nav.View)

	m.Update(chat.CloseMsg{})
	assert.False(t, m.chatOpen)
}

func TestStatusMessages(t *testing.T) {
	m, _, _ := newModel(t, screenstest.StudentEmail)

	m.Update(screens.StatusMsg{Text: "Inquiry sent"})
	assert.Equal(t, "Inquiry sent", m.State().Status)

	m.Update(router.NavigateMsg{View: router.ViewLibrary})
	assert.Empty(t, m.State().Status)
}

func TestViewTooSmall(t *testing.T) {
	m, _, _ := newModel(t, screenstest.StudentEmail)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.True(t, strings.Contains(m.frame(), "too small"))
}

func TestRegistryCoversEveryView(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	reg := registry(env.Deps)
	for _, v := range router.AllViews() {
		e, ok := reg[v]
		require.True(t, ok, "view %s", v)
		s := e.Factory(router.Capabilities{})
		assert.NotEmpty(t, s.Title(), "view %s", v)
	}
	assert.Equal(t, router.CapBackToDashboard|router.CapTheme, reg[router.ViewSimulation].Needs)
	assert.Equal(t, router.CapNavigate, reg[router.ViewDashboard].Needs)
}

func TestLoginTickLogoutEndToEnd(t *testing.T) {
	m, env, clk := newModel(t, "")
	ctx := context.Background()
	u, err := env.Store.Authenticate(ctx, screenstest.StudentEmail, catalog.DefaultPassword)
	require.NoError(t, err)
	m.Update(screens.LoggedInMsg{User: u})

	clk.now = clk.now.Add(65 * time.Second)
	m.Update(tickMsg{epoch: m.epoch})
	sessions, err := env.Store.StudySessions(ctx, u.ID, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.InDelta(t, 65.0/3600, sessions[0].Hours, 1e-9)

	clk.now = clk.now.Add(2 * time.Second)
	m.Update(ctrl('l'))
	sessions, err = env.Store.StudySessions(ctx, u.ID, store.QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, sessions, 1, "logout inside the stop guard adds nothing")
}
