package components

import (
	"charm.land/bubbles/v2/table"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/ui/theme"
)

// NewTable builds a focused bubbles table styled for the active theme.
// Column widths are scaled down proportionally when they exceed width.
func NewTable(cols []table.Column, rows []table.Row, th theme.Theme, pal theme.Palette, width, height int) table.Model {
	t := table.New(
		table.WithColumns(FitColumns(cols, width)),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
		table.WithWidth(width),
	)
	t.SetStyles(TableStyles(th, pal))
	return t
}

// TableStyles returns table styles for the theme and palette. Views call it
// again after a light/dark switch.
func TableStyles(th theme.Theme, pal theme.Palette) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(pal.Border).
		Foreground(pal.Text)
	s.Cell = s.Cell.Foreground(pal.Text)
	s.Selected = s.Selected.Foreground(lipgloss.Color("#FFFFFF")).Background(th.Bg)
	return s
}

// FitColumns shrinks column widths so the row (plus cell padding) fits.
func FitColumns(cols []table.Column, width int) []table.Column {
	total := 0
	for _, c := range cols {
		total += c.Width + 2
	}
	if total <= width || total == 0 {
		return cols
	}
	out := make([]table.Column, len(cols))
	for i, c := range cols {
		c.Width = max(c.Width*width/total, 4)
		out[i] = c
	}
	return out
}
