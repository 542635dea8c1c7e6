package account

import (
	"context"
	"slices"
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

type prefsMsg struct {
	prefs map[string]string
	err   error
}

// SettingsScreen shows appearance, the assistant status and the stored
// preferences.
type SettingsScreen struct {
	deps    screens.Deps
	prefs   map[string]string
	loadErr error
}

var _ screen.Screen = (*SettingsScreen)(nil)

// NewSettings creates the settings view.
func NewSettings(deps screens.Deps) *SettingsScreen {
	return &SettingsScreen{deps: deps}
}

func (s *SettingsScreen) Init() tea.Cmd {
	if s.deps.Store == nil {
		return nil
	}
	st := s.deps.Store
	return func() tea.Msg {
		prefs, err := st.Preferences(context.Background())
		return prefsMsg{prefs: prefs, err: err}
	}
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "t", Description: "Toggle dark mode"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case prefsMsg:
		s.prefs = msg.prefs
		s.loadErr = msg.err
		if msg.err != nil {
			s.deps.Logger().Warn("load preferences", "error", msg.err)
		}
	case tea.KeyPressMsg:
		if msg.String() == "t" {
			// Re-read once the root model has persisted the new theme.
			return s, tea.Sequence(screens.ToggleDarkMode(), s.Init())
		}
	}
	return s, nil
}

func (s *SettingsScreen) View(width, height int) string {
	pal := s.deps.CurrentPalette()
	th := theme.Resolve(s.deps.CurrentUser())
	label := lipgloss.NewStyle().Foreground(pal.TextDim).Width(18)
	value := lipgloss.NewStyle().Foreground(pal.Text)
	cardWidth := min(max(width-4, 30), 64)

	mode := "Light"
	if pal.Dark {
		mode = "Dark"
	}
	assistant := theme.Pending.Render("Not configured")
	if s.deps.Assistant.Available() {
		assistant = theme.Correct.Render("Ready")
	}
	appearance := strings.Join([]string{
		th.AccentTitle("Appearance"),
		"",
		label.Render("Mode") + value.Render(mode),
		label.Render("Accent") + th.Badge(th.Name),
		label.Render("AI assistant") + assistant,
	}, "\n")

	var prefLines []string
	prefLines = append(prefLines, th.AccentTitle("Stored preferences"), "")
	switch {
	case s.loadErr != nil:
		prefLines = append(prefLines, theme.Incorrect.Render("Preferences could not be read."))
	case len(s.prefs) == 0:
		prefLines = append(prefLines, theme.Hint.Render("None"))
	default:
		keys := make([]string, 0, len(s.prefs))
		for k := range s.prefs {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			v := s.prefs[k]
			if k == store.PrefCurrentUser {
				v += " (session)"
			}
			prefLines = append(prefLines, label.Render(k)+value.Render(v))
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		th.AccentTitle("Settings") + "\n\n" +
			components.Card(appearance, pal, cardWidth) + "\n" +
			components.Card(strings.Join(prefLines, "\n"), pal, cardWidth),
	)
}
