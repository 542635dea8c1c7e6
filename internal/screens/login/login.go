package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/store"
	"github.com/saketh8887/medconnect/internal/ui/components"
	"github.com/saketh8887/medconnect/internal/ui/layout"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

const formWidth = 44

type field int

const (
	fieldEmail field = iota
	fieldPassword
	fieldSubmit
	fieldCount
)

type loginFailedMsg struct {
	err error
}

// LoginScreen is the sign-in form shown while nobody is authenticated.
type LoginScreen struct {
	deps     screens.Deps
	email    components.TextInput
	password components.TextInput
	submit   components.Button
	focus    field
	busy     bool
	err      string
}

var (
	_ screen.Screen        = (*LoginScreen)(nil)
	_ screen.InputCapturer = (*LoginScreen)(nil)
)

// New creates the login form with the email field focused.
func New(deps screens.Deps) *LoginScreen {
	l := &LoginScreen{
		deps:     deps,
		email:    components.NewTextInput("Institutional Email", "name@college.edu", false, formWidth-6),
		password: components.NewTextInput("Password", "••••••••", true, formWidth-6),
		submit:   components.NewButton("Sign In", theme.Primary, nil),
	}
	l.email.Focus()
	return l
}

func (l *LoginScreen) Init() tea.Cmd {
	return nil
}

func (l *LoginScreen) Title() string {
	return "Sign In"
}

// CapturingInput is always true: every key belongs to the form.
func (l *LoginScreen) CapturingInput() bool {
	return true
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginFailedMsg:
		l.busy = false
		if errors.Is(msg.err, store.ErrInvalidCredentials) {
			l.err = "Invalid email or password."
		} else {
			l.err = "Sign-in failed. Please try again."
			l.deps.Logger().Error("login failed", "error", msg.err)
		}
		l.password.SetValue("")
		return l, l.setFocus(fieldPassword)

	case tea.KeyPressMsg:
		if l.busy {
			return l, nil
		}
		switch msg.String() {
		case "tab", "down":
			return l, l.setFocus((l.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return l, l.setFocus((l.focus + fieldCount - 1) % fieldCount)
		case "enter":
			if l.focus == fieldEmail {
				return l, l.setFocus(fieldPassword)
			}
			return l, l.signIn()
		}
		l.err = ""
	}

	var cmd tea.Cmd
	switch l.focus {
	case fieldEmail:
		l.email, cmd = l.email.Update(msg)
	case fieldPassword:
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

func (l *LoginScreen) setFocus(f field) tea.Cmd {
	l.focus = f
	l.email.Blur()
	l.password.Blur()
	l.submit.Active = f == fieldSubmit
	switch f {
	case fieldEmail:
		return l.email.Focus()
	case fieldPassword:
		return l.password.Focus()
	}
	return nil
}

func (l *LoginScreen) signIn() tea.Cmd {
	email := strings.TrimSpace(l.email.Value())
	password := l.password.Value()

	missing := false
	if email == "" {
		l.email.SetError("Email is required")
		missing = true
	}
	if password == "" {
		l.password.SetError("Password is required")
		missing = true
	}
	if missing {
		return nil
	}

	l.busy = true
	l.err = ""
	st := l.deps.Store
	return func() tea.Msg {
		u, err := st.Authenticate(context.Background(), email, password)
		if err != nil {
			return loginFailedMsg{err: err}
		}
		return screens.LoggedInMsg{User: u}
	}
}

func (l *LoginScreen) View(width, height int) string {
	pal := l.deps.CurrentPalette()

	brand := renderBanner(width, height, theme.Resolve(nil))
	tagline := lipgloss.NewStyle().Foreground(pal.TextDim).Render("Student Portal · Sign in to continue")

	sections := []string{
		brand,
		tagline,
		"",
		l.email.View(pal),
		"",
		l.password.View(pal),
		"",
		l.submit.View(pal),
	}
	switch {
	case l.busy:
		sections = append(sections, "", theme.Pending.Render("Signing in…"))
	case l.err != "":
		sections = append(sections, "", theme.Incorrect.Render(l.err))
	}

	card := components.Card(strings.Join(sections, "\n"), pal, min(formWidth, max(width-4, 10)))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
