package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/ui/theme"
)

// Card wraps content in a rounded-border card of the given outer width.
func Card(content string, pal theme.Palette, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Border).
		Background(pal.Card).
		Width(max(width, 4)).
		Padding(0, 1).
		Render(content)
}

// StatCard is a small card with a dim label above a bold value.
func StatCard(label, value string, accent color.Color, pal theme.Palette, width int) string {
	body := lipgloss.NewStyle().Foreground(pal.TextDim).Render(label) + "\n" +
		lipgloss.NewStyle().Foreground(accent).Bold(true).Render(value)
	return Card(body, pal, width)
}

// CardRow lays cards side by side, wrapping onto a second row when they
// do not fit width.
func CardRow(cards []string, width int) string {
	var rows []string
	var line []string
	used := 0
	for _, c := range cards {
		w := lipgloss.Width(c)
		if used > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line, used = nil, 0
		}
		line = append(line, c)
		used += w
	}
	if len(line) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
