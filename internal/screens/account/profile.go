// Package account renders the signed-in user's profile and the portal
// settings.
package account

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/ui/components"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

// ProfileScreen shows the identity and academic record of the session user.
type ProfileScreen struct {
	deps screens.Deps
}

var _ screen.Screen = (*ProfileScreen)(nil)

// NewProfile creates the profile view.
func NewProfile(deps screens.Deps) *ProfileScreen {
	return &ProfileScreen{deps: deps}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

func (p *ProfileScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *ProfileScreen) View(width, height int) string {
	pal := p.deps.CurrentPalette()
	u := p.deps.CurrentUser()
	if u == nil {
		return theme.Hint.Render("Not signed in.")
	}
	th := theme.Resolve(u)
	inner := max(width-4, 30)
	label := lipgloss.NewStyle().Foreground(pal.TextDim).Width(20)
	value := lipgloss.NewStyle().Foreground(pal.Text)

	row := func(k, v string) string {
		if v == "" {
			v = "—"
		}
		return label.Render(k) + value.Render(v)
	}

	head := lipgloss.NewStyle().Foreground(pal.Text).Bold(true).Render(u.Name) + "  " + th.Badge(string(u.Role))
	identity := strings.Join([]string{
		head,
		lipgloss.NewStyle().Foreground(pal.TextDim).Render(u.College),
		"",
		row("Year", u.Year),
		row("Email", u.Email),
		row("Contact", u.ContactNumber),
		row("Blood group", u.BloodGroup),
		row("Emergency contact", u.EmergencyContact),
	}, "\n")

	last := "first session"
	if u.LastLogin != nil {
		last = u.LastLogin.Local().Format("02 Jan 2006 15:04")
	}
	academic := strings.Join([]string{
		th.AccentTitle("Academic record"),
		"",
		row("CGPA", u.CGPA),
		row("Percentage", u.Percentage),
		row("Chapters completed", fmt.Sprint(u.CompletedChapterIDs.Len())),
		row("Topics completed", fmt.Sprint(u.CompletedTopicIDs.Len())),
		row("Quizzes taken", fmt.Sprint(len(u.QuizScores))),
		row("Last login", last),
	}, "\n")

	cardWidth := min(inner, 64)
	return lipgloss.NewStyle().Padding(1, 2).Render(
		th.AccentTitle("My Profile") + "\n\n" +
			components.CardRow([]string{
				components.Card(identity, pal, cardWidth),
				components.Card(academic, pal, cardWidth),
			}, inner),
	)
}
