package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	HeaderHeight = 3
	FooterHeight = 3

	SidebarWidth = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the available height for screen content.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-HeaderHeight-FooterHeight, 0)
}

// ContentWidth returns the width left for the screen once the sidebar is
// docked (or not).
func ContentWidth(totalWidth int, sidebar bool) int {
	if sidebar {
		totalWidth -= SidebarWidth
	}
	return max(totalWidth, 0)
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(pal theme.Palette, width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(pal.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// HeaderInfo is what the header bar shows besides the app name.
type HeaderInfo struct {
	Title    string
	UserName string
	Year     string
}

// RenderHeader renders the application header bar.
func RenderHeader(info HeaderInfo, th theme.Theme, pal theme.Palette, width int) string {
	left := lipgloss.NewStyle().
		Foreground(th.Accent).
		Bold(true).
		Render("  ✚ MedConnect")

	center := lipgloss.NewStyle().
		Foreground(pal.Text).
		Render(info.Title)

	right := lipgloss.NewStyle().Foreground(pal.Text).Render(info.UserName)
	if info.Year != "" {
		right += " " + th.Badge(info.Year)
	}

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := max(width-4, 0)
	leftGap := max((innerWidth-centerLen)/2-leftLen, 1)
	rightGap := max(innerWidth-leftLen-leftGap-centerLen-rightLen, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return lipgloss.NewStyle().
		Width(width).
		Background(pal.Card).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Render(content)
}

// SidebarItem is one navigation entry.
type SidebarItem struct {
	Key   string
	Label string
}

// RenderSidebar renders the navigation column with active highlighted.
func RenderSidebar(items []SidebarItem, active string, th theme.Theme, pal theme.Palette, height int) string {
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, lipgloss.NewStyle().Foreground(pal.TextDim).Render("NAVIGATION"), "")
	for _, it := range items {
		if it.Key == active {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(th.Bg).
				Bold(true).
				Width(SidebarWidth-4).
				Render("▸ "+it.Label))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(pal.Text).Render("  "+it.Label))
	}

	return lipgloss.NewStyle().
		Width(SidebarWidth).
		Height(max(height, 0)).
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(pal.Border).
		Render(strings.Join(lines, "\n"))
}

// RenderFooter renders the footer with key hints and an optional status
// message on the right.
func RenderFooter(hints []KeyHint, status string, th theme.Theme, pal theme.Palette, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(pal.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(pal.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")
	if status != "" {
		s := lipgloss.NewStyle().Foreground(th.Accent).Render(status)
		gap := max(width-4-lipgloss.Width(content)-lipgloss.Width(s), 2)
		content += strings.Repeat(" ", gap) + s
	}

	return lipgloss.NewStyle().
		Width(width).
		Background(pal.Card).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Border).
		Render(content)
}

// RenderFrame composes the full frame: header, optional sidebar beside the
// content, then the footer.
func RenderFrame(header, sidebar, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	body := lipgloss.NewStyle().
		Width(ContentWidth(width, sidebar != "")).
		Height(contentHeight).
		Render(content)
	if sidebar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, body)
	}

	return header + "\n" + body + "\n" + footer
}
