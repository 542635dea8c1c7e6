// Package records renders the read-only campus views: library, clinical
// duties, calendar, hostel, notices and fees. Each is a table over catalog
// data with an optional summary above and a detail line for the selected row.
package records

import (
	"strings"

	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/ui/components"
	"github.com/saketh8887/medconnect/internal/ui/layout"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

// TableScreen is a titled table view.
type TableScreen struct {
	deps    screens.Deps
	title   string
	cols    []table.Column
	rows    []table.Row
	table   table.Model
	summary func(pal theme.Palette) string
	detail  func(row int) string
}

var _ screen.Screen = (*TableScreen)(nil)

func newTableScreen(deps screens.Deps, title string, cols []table.Column, rows []table.Row) *TableScreen {
	pal := deps.CurrentPalette()
	th := theme.Resolve(deps.CurrentUser())
	return &TableScreen{
		deps:  deps,
		title: title,
		cols:  cols,
		rows:  rows,
		table: components.NewTable(cols, rows, th, pal, 80, 10),
	}
}

func (r *TableScreen) Init() tea.Cmd {
	return nil
}

func (r *TableScreen) Title() string {
	return r.title
}

func (r *TableScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Ctrl+B", Description: "Menu"},
	}
}

// Rows returns the table rows.
func (r *TableScreen) Rows() []table.Row {
	return r.rows
}

// Cursor is the index of the selected row.
func (r *TableScreen) Cursor() int {
	return r.table.Cursor()
}

func (r *TableScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.table, cmd = r.table.Update(msg)
	return r, cmd
}

func (r *TableScreen) View(width, height int) string {
	pal := r.deps.CurrentPalette()
	th := theme.Resolve(r.deps.CurrentUser())
	inner := max(width-4, 20)

	sections := []string{th.AccentTitle(r.title)}
	if r.summary != nil {
		sections = append(sections, r.summary(pal))
	}
	sections = append(sections, "")

	if len(r.rows) == 0 {
		sections = append(sections, theme.Hint.Render("Nothing to show yet."))
		return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
	}

	var detail string
	if r.detail != nil {
		detail = r.detail(r.table.Cursor())
	}

	used := lipgloss.Height(strings.Join(sections, "\n")) + 2
	if detail != "" {
		used += lipgloss.Height(detail) + 1
	}

	t := r.table
	t.SetStyles(components.TableStyles(th, pal))
	t.SetColumns(components.FitColumns(r.cols, inner))
	t.SetWidth(inner)
	t.SetHeight(max(height-used, 3))
	sections = append(sections, t.View())

	if detail != "" {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(pal.Text).Width(inner).Render(detail))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
}
