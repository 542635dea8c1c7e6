// Package screenstest has helpers for driving portal views in tests.
package screenstest

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/profile"
	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/store"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

const (
	StudentEmail = "sarah.s@aiims.edu.in"
	AdminEmail   = "admin@medconnect.edu"
)

// Now is the fixed clock used by Deps.
var Now = time.Date(2025, time.March, 12, 9, 30, 0, 0, time.UTC)

// Env is a seeded store plus the deps built on it.
type Env struct {
	Store *store.Store
	Deps  screens.Deps
	user  *profile.UserProfile
}

// SetUser replaces the session user the deps report.
func (e *Env) SetUser(u *profile.UserProfile) {
	e.user = u
}

// New opens a seeded store in a temp dir. When email is set that account
// is signed in.
func New(t testing.TB, email string) *Env {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "screens.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	s.SetClock(func() time.Time { return Now })

	ctx := context.Background()
	_, err = s.Seed(ctx, catalog.InitialUsers())
	require.NoError(t, err)

	env := &Env{Store: s}
	if email != "" {
		u, err := s.Authenticate(ctx, email, catalog.DefaultPassword)
		require.NoError(t, err)
		env.user = u
	}
	env.Deps = screens.Deps{
		Store:   s,
		Catalog: catalog.Default(),
		User:    func() *profile.UserProfile { return env.user },
		Palette: func() theme.Palette { return theme.PaletteFor(false) },
		Now:     func() time.Time { return Now },
	}
	return env
}

// Press builds a key press for a key name as tea reports it ("enter",
// "tab", "a", ...).
func Press(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	}
	r := []rune(key)[0]
	return tea.KeyPressMsg{Code: r, Text: key}
}

// Type sends text one rune at a time.
func Type(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return s
}

// Send delivers keys in order and returns the last command.
func Send(s screen.Screen, keys ...string) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		s, cmd = s.Update(Press(k))
	}
	return s, cmd
}

// Run executes cmd and returns the messages it produced, expanding one
// level of batching or sequencing. Nil commands produce nothing.
func Run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for i := range v.Len() {
		c, _ := v.Index(i).Interface().(tea.Cmd)
		if c == nil {
			continue
		}
		if m := c(); m != nil {
			out = append(out, m)
		}
	}
	return out
}

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// Find returns the first message of type T that cmd produces.
func Find[T tea.Msg](cmd tea.Cmd) (T, bool) {
	for _, m := range Run(cmd) {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
