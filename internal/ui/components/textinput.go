package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and an inline error.
type TextInput struct {
	Model textinput.Model
	Label string
	err   string
}

// NewTextInput creates a new styled text input. Secret inputs echo a mask.
func NewTextInput(label, placeholder string, secret bool, width int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	if width > 0 {
		ti.SetWidth(width)
	}
	return TextInput{Model: ti, Label: label}
}

// Focus focuses the input and returns the blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input receives keys.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages. Typing clears a previous error.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok && t.Focused() {
		t.err = ""
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label, the input and any error.
func (t TextInput) View(pal theme.Palette) string {
	label := lipgloss.NewStyle().Foreground(pal.TextDim)
	if t.Focused() {
		label = label.Foreground(pal.Text).Bold(true)
	}
	view := label.Render(t.Label) + "\n" + t.Model.View()
	if t.err != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+t.err)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// SetError shows msg under the input until the next key press.
func (t *TextInput) SetError(msg string) {
	t.err = msg
}

// Err returns the current inline error.
func (t TextInput) Err() string {
	return t.err
}
