package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	Fill        color.Color
}

// NewProgressBar creates a new progress bar. Percent is a fraction in [0,1].
func NewProgressBar(label string, percent float64, showPercent bool, width int, fill color.Color) ProgressBar {
	if fill == nil {
		fill = theme.Primary
	}
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		Fill:        fill,
	}
}

// View renders the progress bar.
func (p ProgressBar) View(pal theme.Palette) string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(pal.Text).Render(p.Label) + "  "
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := max(p.Width-lipgloss.Width(result)-percentWidth, 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	result += lipgloss.NewStyle().Background(p.Fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(pal.Border).Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(pal.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}
