package theme

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/profile"
)

// Theme is the accent bundle chosen by the user's academic phase.
// Views treat the tokens as opaque colours.
type Theme struct {
	Name     string
	Accent   color.Color
	Text     color.Color
	Bg       color.Color
	Border   color.Color
	Gradient []color.Color
	Glow     color.Color
	Blob     color.Color
}

const (
	NameBlue   = "blue"
	NameYellow = "yellow"

	// phaseIIMarker selects the alternate theme. A plain substring match, so
	// "Phase III" labels match as well.
	phaseIIMarker = "Phase II"
)

// Default returns the blue theme.
func Default() Theme {
	return Theme{
		Name:   NameBlue,
		Accent: lipgloss.Color("#2563EB"),
		Text:   lipgloss.Color("#2563EB"),
		Bg:     lipgloss.Color("#2563EB"),
		Border: lipgloss.Color("#3B82F6"),
		Gradient: []color.Color{
			lipgloss.Color("#2563EB"),
			lipgloss.Color("#4F46E5"),
			lipgloss.Color("#3B82F6"),
		},
		Glow: lipgloss.Color("#3B82F6"),
		Blob: lipgloss.Color("#60A5FA"),
	}
}

func yellow() Theme {
	t := Default()
	t.Name = NameYellow
	t.Bg = lipgloss.Color("#EAB308")
	t.Text = lipgloss.Color("#CA8A04")
	t.Gradient = []color.Color{
		lipgloss.Color("#FACC15"),
		lipgloss.Color("#FB923C"),
		lipgloss.Color("#EAB308"),
	}
	return t
}

// Resolve maps a user to its theme. It is pure and keeps no cache; callers
// resolve again whenever the user changes.
func Resolve(user *profile.UserProfile) Theme {
	if user == nil {
		return Default()
	}
	if strings.Contains(user.Year, phaseIIMarker) {
		return yellow()
	}
	return Default()
}

// Palette holds the surface colours for light or dark mode.
type Palette struct {
	Dark       bool
	Background color.Color
	Card       color.Color
	Text       color.Color
	TextDim    color.Color
	Border     color.Color
}

// PaletteFor returns the light or dark surfaces.
func PaletteFor(dark bool) Palette {
	ld := lipgloss.LightDark(dark)
	return Palette{
		Dark:       dark,
		Background: ld(lipgloss.Color("#F8FAFC"), lipgloss.Color("#020617")),
		Card:       ld(lipgloss.Color("#FFFFFF"), lipgloss.Color("#0F172A")),
		Text:       ld(lipgloss.Color("#0F172A"), lipgloss.Color("#F1F5F9")),
		TextDim:    ld(lipgloss.Color("#64748B"), lipgloss.Color("#94A3B8")),
		Border:     ld(lipgloss.Color("#E2E8F0"), lipgloss.Color("#1E293B")),
	}
}

// Shared colours that do not depend on phase or mode.
var (
	Primary = lipgloss.Color("#2563EB")
	Success = lipgloss.Color("#10B981")
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#F43F5E")
	TextDim = lipgloss.Color("#94A3B8")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Pending = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)
)

// AccentTitle renders a heading in the theme's accent colour.
func (t Theme) AccentTitle(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Render(s)
}

// Badge renders s on the theme's background token.
func (t Theme) Badge(s string) string {
	return lipgloss.NewStyle().
		Background(t.Bg).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 1).
		Render(s)
}
