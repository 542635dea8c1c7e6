package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/ui/components"
	"github.com/saketh8887/medconnect/internal/ui/layout"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

// quickLinks are the modules offered on the dashboard, in menu order.
var quickLinks = []struct {
	view   router.ViewID
	detail string
}{
	{router.ViewSubjects, "Chapters, quizzes and progress"},
	{router.ViewLibrary, "Reference books and lectures"},
	{router.ViewSimulation, "3D anatomy practice tasks"},
	{router.ViewPerformance, "Scores, hours and AI feedback"},
	{router.ViewCalendar, "Exams, holidays and programs"},
	{router.ViewNotices, "Latest notice-board posts"},
	{router.ViewInquiries, "Ask faculty a question"},
}

type statsMsg struct {
	hours float64
	err   error
}

// DashboardScreen is the landing view: headline stats plus quick links.
type DashboardScreen struct {
	deps    screens.Deps
	menu    components.Menu
	hours   float64
	loaded  bool
	loadErr error
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard. Quick links navigate through caps.Navigate.
func New(deps screens.Deps, caps router.Capabilities) *DashboardScreen {
	items := make([]components.MenuItem, 0, len(quickLinks))
	for _, ql := range quickLinks {
		v := ql.view
		items = append(items, components.MenuItem{
			Label:    v.Label(),
			Detail:   ql.detail,
			Disabled: caps.Navigate == nil,
			Action:   func() tea.Cmd { return caps.Navigate(v) },
		})
	}
	return &DashboardScreen{
		deps: deps,
		menu: components.NewMenu(items, theme.Resolve(deps.CurrentUser()).Accent),
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	u := d.deps.CurrentUser()
	if u == nil || d.deps.Store == nil {
		return nil
	}
	st, id := d.deps.Store, u.ID
	return func() tea.Msg {
		h, err := st.TotalStudyHours(context.Background(), id)
		return statsMsg{hours: h, err: err}
	}
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsMsg); ok {
		d.loaded = true
		d.hours = msg.hours
		d.loadErr = msg.err
		if msg.err != nil {
			d.deps.Logger().Warn("load study hours", "error", msg.err)
		}
		return d, nil
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	pal := d.deps.CurrentPalette()
	u := d.deps.CurrentUser()
	th := theme.Resolve(u)

	var sections []string

	name := "Doctor"
	if u != nil {
		if f := strings.Fields(u.Name); len(f) > 0 {
			name = f[0]
		}
	}
	sections = append(sections,
		th.AccentTitle(fmt.Sprintf("Welcome back, %s", name)),
		lipgloss.NewStyle().Foreground(pal.TextDim).Render(d.deps.Clock().Format("Monday, 2 January 2006")),
		"",
	)

	sections = append(sections, d.renderStats(th, pal, width), "")

	cat := d.deps.Catalog
	if cat != nil {
		if events := cat.CalendarEvents(); len(events) > 0 {
			e := events[0]
			sections = append(sections,
				lipgloss.NewStyle().Foreground(pal.Text).Bold(true).Render("Next up"),
				fmt.Sprintf("  %s  %s · %s", e.Date.Format("02 Jan"), e.Title, e.Location),
				"",
			)
		}
	}

	sections = append(sections,
		lipgloss.NewStyle().Foreground(pal.Text).Bold(true).Render("Quick access"),
		d.menu.View(pal),
	)

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
}

func (d *DashboardScreen) renderStats(th theme.Theme, pal theme.Palette, width int) string {
	u := d.deps.CurrentUser()
	cardWidth := 22

	hours := "…"
	switch {
	case d.loadErr != nil:
		hours = "n/a"
	case d.loaded:
		hours = fmt.Sprintf("%.1f h", d.hours)
	}

	topics, avg := "0", "—"
	if u != nil {
		total := 0
		if d.deps.Catalog != nil {
			total = d.deps.Catalog.TopicCount()
		}
		topics = fmt.Sprintf("%d / %d", u.CompletedTopicIDs.Len(), total)
		if len(u.QuizScores) > 0 {
			avg = fmt.Sprintf("%.0f%%", u.AverageScore())
		}
	}

	cards := []string{
		components.StatCard("Study time", hours, th.Accent, pal, cardWidth),
		components.StatCard("Topics completed", topics, theme.Success, pal, cardWidth),
		components.StatCard("Quiz average", avg, theme.Warning, pal, cardWidth),
	}
	if u != nil && u.CGPA != "" {
		cards = append(cards, components.StatCard("CGPA", u.CGPA, th.Accent, pal, cardWidth))
	}
	return components.CardRow(cards, max(width-4, cardWidth))
}
