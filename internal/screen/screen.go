package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/saketh8887/medconnect/internal/ui/layout"
)

// Screen defines the interface for all portal views.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header, sidebar and footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that are currently reading free
// text, so global single-key shortcuts must not fire.
type InputCapturer interface {
	CapturingInput() bool
}
