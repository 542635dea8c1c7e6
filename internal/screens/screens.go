// Package screens holds what the portal views share: the collaborators they
// are built with and the messages they send back to the root model.
package screens

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/saketh8887/medconnect/internal/assistant"
	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/logging"
	"github.com/saketh8887/medconnect/internal/profile"
	"github.com/saketh8887/medconnect/internal/store"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

// Store is the slice of persistence the views read and write.
type Store interface {
	Authenticate(ctx context.Context, email, password string) (*profile.UserProfile, error)
	RecordQuizScore(ctx context.Context, cat *catalog.Catalog, userID, chapterID string, score float64) (*profile.UserProfile, error)
	TotalStudyHours(ctx context.Context, userID string) (float64, error)
	StudySessions(ctx context.Context, userID string, opts store.QueryOpts) ([]store.StudySession, error)
	ListUsers(ctx context.Context) ([]*profile.UserProfile, error)
	CreateInquiry(ctx context.Context, q *store.Inquiry) error
	ListInquiries(ctx context.Context, studentID string) ([]store.Inquiry, error)
	ResolveInquiry(ctx context.Context, id, answer string) error
	Preferences(ctx context.Context) (map[string]string, error)
}

var _ Store = (*store.Store)(nil)

// Deps are handed to every view factory. User and Palette are read at call
// time so a view always sees the current session and light/dark mode.
type Deps struct {
	Store     Store
	Catalog   *catalog.Catalog
	Assistant *assistant.Service
	User      func() *profile.UserProfile
	Palette   func() theme.Palette
	Now       func() time.Time
	Log       *slog.Logger
}

// CurrentUser returns the session user, or nil.
func (d Deps) CurrentUser() *profile.UserProfile {
	if d.User == nil {
		return nil
	}
	return d.User()
}

// CurrentPalette returns the active palette, light when unset.
func (d Deps) CurrentPalette() theme.Palette {
	if d.Palette == nil {
		return theme.PaletteFor(false)
	}
	return d.Palette()
}

// Clock returns the current time.
func (d Deps) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Logger never returns nil.
func (d Deps) Logger() *slog.Logger {
	if d.Log == nil {
		return logging.Discard()
	}
	return d.Log
}

// LoggedInMsg is sent by the login view after a successful sign-in.
type LoggedInMsg struct {
	User *profile.UserProfile
}

// UserUpdatedMsg carries a profile that changed in the store.
type UserUpdatedMsg struct {
	User *profile.UserProfile
}

// StatusMsg asks the root model to show Text in the footer.
type StatusMsg struct {
	Text string
}

// Status returns a command that emits StatusMsg.
func Status(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// UserUpdated returns a command that emits UserUpdatedMsg.
func UserUpdated(u *profile.UserProfile) tea.Cmd {
	return func() tea.Msg { return UserUpdatedMsg{User: u} }
}

// ToggleDarkModeMsg asks the root model to flip light/dark mode.
type ToggleDarkModeMsg struct{}

// ToggleDarkMode returns a command that emits ToggleDarkModeMsg.
func ToggleDarkMode() tea.Cmd {
	return func() tea.Msg { return ToggleDarkModeMsg{} }
}
