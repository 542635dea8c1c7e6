package database

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/profile"
	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/ui/components"
	"github.com/saketh8887/medconnect/internal/ui/layout"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

var columns = []table.Column{
	{Title: "Name", Width: 22},
	{Title: "Email", Width: 26},
	{Title: "Role", Width: 8},
	{Title: "Year", Width: 20},
	{Title: "Topics", Width: 7},
	{Title: "Last login", Width: 17},
}

type usersMsg struct {
	users []*profile.UserProfile
	err   error
}

// DatabaseScreen is the admin view over every provisioned account.
type DatabaseScreen struct {
	deps    screens.Deps
	users   []*profile.UserProfile
	table   table.Model
	loaded  bool
	loadErr error
}

var _ screen.Screen = (*DatabaseScreen)(nil)

// New creates the database view.
func New(deps screens.Deps) *DatabaseScreen {
	return &DatabaseScreen{
		deps:  deps,
		table: components.NewTable(columns, nil, theme.Resolve(deps.CurrentUser()), deps.CurrentPalette(), 100, 10),
	}
}

func (d *DatabaseScreen) allowed() bool {
	return d.deps.CurrentUser().IsAdmin()
}

func (d *DatabaseScreen) Init() tea.Cmd {
	if !d.allowed() || d.deps.Store == nil {
		return nil
	}
	st := d.deps.Store
	return func() tea.Msg {
		users, err := st.ListUsers(context.Background())
		return usersMsg{users: users, err: err}
	}
}

func (d *DatabaseScreen) Title() string {
	return "Database"
}

func (d *DatabaseScreen) KeyHints() []layout.KeyHint {
	if !d.allowed() {
		return nil
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "r", Description: "Refresh"},
	}
}

func (d *DatabaseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if !d.allowed() {
		return d, nil
	}
	switch msg := msg.(type) {
	case usersMsg:
		d.loaded = true
		d.loadErr = msg.err
		if msg.err != nil {
			d.deps.Logger().Error("list users", "error", msg.err)
			return d, nil
		}
		d.users = msg.users
		d.table.SetRows(rowsFor(msg.users))
		return d, nil

	case tea.KeyPressMsg:
		if msg.String() == "r" {
			return d, d.Init()
		}
	}
	var cmd tea.Cmd
	d.table, cmd = d.table.Update(msg)
	return d, cmd
}

func rowsFor(users []*profile.UserProfile) []table.Row {
	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		last := "never"
		if u.LastLogin != nil {
			last = u.LastLogin.Local().Format("02 Jan 2006 15:04")
		}
		rows = append(rows, table.Row{
			u.Name, u.Email, string(u.Role), u.Year,
			fmt.Sprint(u.CompletedTopicIDs.Len()), last,
		})
	}
	return rows
}

func (d *DatabaseScreen) View(width, height int) string {
	pal := d.deps.CurrentPalette()
	th := theme.Resolve(d.deps.CurrentUser())
	dim := lipgloss.NewStyle().Foreground(pal.TextDim)
	inner := max(width-4, 20)

	if !d.allowed() {
		notice := components.Card(
			theme.Incorrect.Render("Access restricted")+"\n"+
				dim.Render("The user database is only available to institutional administrators."),
			pal, min(inner, 60))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, notice)
	}

	sections := []string{th.AccentTitle("User Database")}
	switch {
	case d.loadErr != nil:
		sections = append(sections, "", theme.Incorrect.Render("Users could not be loaded. Press r to retry."))
		return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
	case !d.loaded:
		sections = append(sections, "", theme.Hint.Render("Loading…"))
		return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
	}

	students := 0
	for _, u := range d.users {
		if u.Role == profile.RoleStudent {
			students++
		}
	}
	sections = append(sections, dim.Render(fmt.Sprintf("%d accounts · %d students", len(d.users), students)), "")

	t := d.table
	t.SetStyles(components.TableStyles(th, pal))
	t.SetColumns(components.FitColumns(columns, inner))
	t.SetWidth(inner)
	t.SetHeight(max(height-6, 3))
	sections = append(sections, t.View())
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
}
