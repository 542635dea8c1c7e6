package components

import (
	"image/color"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label   string
	Active  bool
	Accent  color.Color
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, accent color.Color, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Accent:  accent,
		OnPress: onPress,
	}
}

// Update fires OnPress when the active button sees enter.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if kmsg.String() == "enter" && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View(pal theme.Palette) string {
	style := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	if b.Active {
		accent := b.Accent
		if accent == nil {
			accent = theme.Primary
		}
		return style.Foreground(lipgloss.Color("#FFFFFF")).Background(accent).Render("▸ " + b.Label)
	}
	return style.Foreground(pal.TextDim).Background(pal.Border).Render(b.Label)
}
