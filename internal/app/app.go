// Package app is the root Bubble Tea model. It owns the portal state and
// the side effects around it: the store session, the study tracker and the
// active view.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/assistant"
	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/logging"
	"github.com/saketh8887/medconnect/internal/portal"
	"github.com/saketh8887/medconnect/internal/profile"
	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/screens/chat"
	"github.com/saketh8887/medconnect/internal/screens/login"
	"github.com/saketh8887/medconnect/internal/store"
	"github.com/saketh8887/medconnect/internal/tracker"
	"github.com/saketh8887/medconnect/internal/ui/layout"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

// Store is what the root model needs from persistence on top of what the
// views use.
type Store interface {
	screens.Store
	tracker.StudyLogger
	CurrentUser(ctx context.Context) (*profile.UserProfile, error)
	Preference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error
	Logout(ctx context.Context) error
}

var _ Store = (*store.Store)(nil)

// Options configures the root model.
type Options struct {
	Store        Store
	Catalog      *catalog.Catalog
	Assistant    *assistant.Service
	Log          *slog.Logger
	Breakpoint   int
	PollInterval time.Duration
	Now          func() time.Time
}

// tickMsg drives the study tracker. Ticks from an older epoch belong to a
// session that has ended.
type tickMsg struct {
	epoch int
	at    time.Time
}

const chatWidth = 56

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts    Options
	log     *slog.Logger
	deps    screens.Deps
	state   portal.State
	tracker *tracker.Tracker
	router  *router.Router
	login   *login.LoginScreen
	chat    *chat.Panel

	chatOpen bool
	epoch    int
	// themeStored is false until mc_theme holds a value; until then the
	// terminal background decides.
	themeStored bool
	width       int
	height      int
}

// New builds the root model signed out. Init restores any stored session.
func New(opts Options) *AppModel {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = router.DefaultBreakpoint
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = tracker.PollInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := &AppModel{
		opts:    opts,
		log:     opts.Log,
		state:   portal.New(0, opts.Breakpoint),
		tracker: tracker.New(opts.Store),
	}
	m.deps = screens.Deps{
		Store:     opts.Store,
		Catalog:   opts.Catalog,
		Assistant: opts.Assistant,
		User:      func() *profile.UserProfile { return m.state.User },
		Palette:   func() theme.Palette { return m.state.Palette() },
		Now:       opts.Now,
		Log:       opts.Log,
	}
	m.router = router.New(registry(m.deps))
	m.login = login.New(m.deps)
	return m
}

func (m *AppModel) Init() tea.Cmd {
	ctx := context.Background()
	var cmds []tea.Cmd

	pref, err := m.opts.Store.Preference(ctx, store.PrefTheme)
	if err != nil {
		m.log.Warn("read theme preference", "error", err)
	}
	if pref != "" {
		m.themeStored = true
		m.state = portal.Reduce(m.state, portal.DarkModeSet{Dark: pref == "dark"})
	} else {
		cmds = append(cmds, tea.RequestBackgroundColor)
	}

	u, err := m.opts.Store.CurrentUser(ctx)
	if err != nil {
		m.log.Warn("restore session", "error", err)
	}
	if u != nil {
		cmds = append(cmds, m.startSession(u))
	} else {
		cmds = append(cmds, m.login.Init())
	}
	return tea.Batch(cmds...)
}

// State returns a copy of the portal state.
func (m *AppModel) State() portal.State {
	return m.state
}

// Active returns the screen that receives keys: the login screen while
// signed out, the chat panel while open, otherwise the routed view.
func (m *AppModel) Active() screen.Screen {
	switch {
	case !m.state.Authenticated():
		return m.login
	case m.chatOpen && m.chat != nil:
		return m.chat
	}
	return m.router.Active()
}

func (m *AppModel) startSession(u *profile.UserProfile) tea.Cmd {
	m.state = portal.Reduce(m.state, portal.LoggedIn{User: u})
	m.tracker.Start(m.opts.Now())
	m.epoch++
	m.login = nil
	m.log.Info("session started", "user", u.ID)
	return tea.Batch(m.show(), m.scheduleTick())
}

func (m *AppModel) scheduleTick() tea.Cmd {
	epoch := m.epoch
	return tea.Tick(m.opts.PollInterval, func(t time.Time) tea.Msg {
		return tickMsg{epoch: epoch, at: t}
	})
}

func (m *AppModel) show() tea.Cmd {
	return m.router.Show(m.state.Nav.View, m.state.Theme())
}

func (m *AppModel) logout() tea.Cmd {
	ctx := context.Background()
	if _, err := m.tracker.Stop(ctx, m.opts.Now()); err != nil {
		m.log.Error("final study flush", "error", err)
	}
	if err := m.opts.Store.Logout(ctx); err != nil {
		m.log.Error("logout", "error", err)
	}
	m.state = portal.Reduce(m.state, portal.LoggedOut{})
	m.state = portal.Reduce(m.state, portal.StatusSet{Message: "Signed out"})
	m.router.Reset()
	m.epoch++
	m.chat, m.chatOpen = nil, false
	m.login = login.New(m.deps)
	return m.login.Init()
}

func (m *AppModel) toggleDarkMode() {
	dark := !m.state.Dark
	m.state = portal.Reduce(m.state, portal.DarkModeSet{Dark: dark})
	value := "light"
	if dark {
		value = "dark"
	}
	if err := m.opts.Store.SetPreference(context.Background(), store.PrefTheme, value); err != nil {
		m.log.Error("persist theme", "error", err)
		m.state = portal.Reduce(m.state, portal.StatusSet{Message: "Could not save theme preference"})
		return
	}
	m.themeStored = true
}

func (m *AppModel) navigate(v router.ViewID) tea.Cmd {
	m.state = portal.Reduce(m.state, portal.Navigated{View: v})
	m.state = portal.Reduce(m.state, portal.StatusSet{})
	return m.show()
}

// step moves d views along the sidebar order.
func (m *AppModel) step(d int) tea.Cmd {
	views := router.AllViews()
	i := slices.Index(views, m.state.Nav.View)
	i = (i + d + len(views)) % len(views)
	return m.navigate(views[i])
}

func (m *AppModel) openChat() {
	if m.chat == nil {
		m.chat = chat.New(m.deps)
	}
	m.chat.SetSize(m.chatSize())
	m.chatOpen = true
}

func (m *AppModel) chatSize() (int, int) {
	h := max(layout.ContentHeight(m.height), 5)
	w := layout.ContentWidth(m.width, m.state.Nav.SidebarOpen)
	if w > chatWidth*2 {
		w = chatWidth
	}
	return w, h
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.state = portal.Reduce(m.state, portal.Resized{Width: msg.Width})
		if m.chat != nil {
			m.chat.SetSize(m.chatSize())
		}
		return m, nil

	case tea.BackgroundColorMsg:
		if !m.themeStored {
			m.state = portal.Reduce(m.state, portal.DarkModeSet{Dark: msg.IsDark()})
		}
		return m, nil

	case tickMsg:
		if msg.epoch != m.epoch || !m.state.Authenticated() {
			return m, nil
		}
		if _, err := m.tracker.Tick(context.Background(), m.opts.Now()); err != nil {
			m.log.Error("study flush", "error", err)
			m.state = portal.Reduce(m.state, portal.StatusSet{Message: "Study time could not be saved"})
		}
		return m, m.scheduleTick()

	case screens.LoggedInMsg:
		return m, m.startSession(msg.User)

	case screens.UserUpdatedMsg:
		m.state = portal.Reduce(m.state, portal.UserUpdated{User: msg.User})
		return m, m.show()

	case screens.StatusMsg:
		m.state = portal.Reduce(m.state, portal.StatusSet{Message: msg.Text})
		return m, nil

	case screens.ToggleDarkModeMsg:
		m.toggleDarkMode()
		return m, nil

	case router.NavigateMsg:
		return m, m.navigate(msg.View)

	case router.BackToDashboardMsg:
		return m, m.navigate(router.ViewDashboard)

	case router.ToggleSidebarMsg:
		m.state = portal.Reduce(m.state, portal.SidebarToggled{})
		return m, nil

	case chat.CloseMsg:
		m.chatOpen = false
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}

	if !m.state.Authenticated() {
		return m, m.updateLogin(msg)
	}
	var cmds []tea.Cmd
	if m.chat != nil {
		_, cmd := m.chat.Update(msg)
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.router.Update(msg))
	return m, tea.Batch(cmds...)
}

func (m *AppModel) updateLogin(msg tea.Msg) tea.Cmd {
	if m.login == nil {
		m.login = login.New(m.deps)
	}
	_, cmd := m.login.Update(msg)
	return cmd
}

func (m *AppModel) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		if _, err := m.tracker.Stop(context.Background(), m.opts.Now()); err != nil {
			m.log.Error("final study flush", "error", err)
		}
		return tea.Quit
	}
	if key == "ctrl+t" {
		m.toggleDarkMode()
		return nil
	}
	if !m.state.Authenticated() {
		return m.updateLogin(msg)
	}

	switch key {
	case "ctrl+l":
		return m.logout()
	case "ctrl+a":
		if m.chatOpen {
			m.chatOpen = false
		} else {
			m.openChat()
		}
		return nil
	case "ctrl+b":
		m.state = portal.Reduce(m.state, portal.SidebarToggled{})
		return nil
	}

	if m.chatOpen && m.chat != nil {
		_, cmd := m.chat.Update(msg)
		return cmd
	}

	capturing := false
	if ic, ok := m.router.Active().(screen.InputCapturer); ok {
		capturing = ic.CapturingInput()
	}
	if !capturing {
		switch key {
		case "]":
			return m.step(1)
		case "[":
			return m.step(-1)
		}
	}
	return m.router.Update(msg)
}

var globalHints = []layout.KeyHint{
	{Key: "[ ]", Description: "Views"},
	{Key: "^B", Description: "Sidebar"},
	{Key: "^A", Description: "Assistant"},
	{Key: "^T", Description: "Theme"},
	{Key: "^L", Description: "Logout"},
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.BackgroundColor = m.state.Palette().Background

	v.WindowTitle = "MedConnect"
	if a := m.Active(); a != nil && a.Title() != "" {
		v.WindowTitle += " · " + a.Title()
	}
	v.SetContent(m.frame())
	return v
}

// frame renders the whole screen for the current size.
func (m *AppModel) frame() string {
	pal := m.state.Palette()
	th := m.state.Theme()
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(pal, m.width, m.height)
	}

	active := m.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	info := layout.HeaderInfo{Title: title}
	if u := m.state.User; u != nil {
		info.UserName, info.Year = u.Name, u.Year
	}
	header := layout.RenderHeader(info, th, pal, m.width)

	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, hp.KeyHints()...)
	}
	if m.state.Authenticated() && !m.chatOpen {
		hints = append(hints, globalHints...)
	}
	hints = append(hints, layout.KeyHint{Key: "^C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.state.Status, th, pal, m.width)

	height := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	if !m.state.Authenticated() {
		return layout.RenderFrame(header, "", m.login.View(m.width, height), footer, m.width, m.height)
	}

	var sidebar string
	if m.state.Nav.SidebarOpen {
		sidebar = layout.RenderSidebar(sidebarItems(), string(m.state.Nav.View), th, pal, height)
	}
	width := layout.ContentWidth(m.width, sidebar != "")

	var content string
	switch {
	case sidebar != "" && m.state.Nav.Narrow():
		// The drawer covers the content on narrow terminals.
		content = ""
	case m.chatOpen && m.chat != nil:
		cw, ch := m.chatSize()
		panel := m.chat.View(cw, ch)
		if rest := width - cw; rest > 0 {
			content = lipgloss.JoinHorizontal(lipgloss.Top, m.router.View(rest, height), panel)
		} else {
			content = panel
		}
	default:
		content = m.router.View(width, height)
	}

	return layout.RenderFrame(header, sidebar, content, footer, m.width, m.height)
}

func sidebarItems() []layout.SidebarItem {
	views := router.AllViews()
	items := make([]layout.SidebarItem, 0, len(views)+1)
	for _, id := range views {
		items = append(items, layout.SidebarItem{Key: string(id), Label: id.Label()})
	}
	return append(items, layout.SidebarItem{Key: "logout", Label: "Logout  ^L"})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
