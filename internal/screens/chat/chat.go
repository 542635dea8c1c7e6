// Package chat is the AI study assistant panel. It is an overlay owned by
// the root model rather than a routed view.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/assistant"
	"github.com/saketh8887/medconnect/internal/llm"
	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/ui/components"
	"github.com/saketh8887/medconnect/internal/ui/layout"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

const (
	askTimeout = 60 * time.Second
	greeting   = "Hi! I'm your MedConnect study assistant. Ask me about any topic you're revising."
)

// CloseMsg asks the root model to hide the panel.
type CloseMsg struct{}

type replyMsg struct {
	text string
	err  error
}

// Panel is the chat overlay.
type Panel struct {
	deps     screens.Deps
	turns    []assistant.Turn
	input    components.TextInput
	viewport viewport.Model
	spinner  spinner.Model
	waiting  bool
	width    int
	height   int
}

var (
	_ screen.Screen        = (*Panel)(nil)
	_ screen.InputCapturer = (*Panel)(nil)
)

// New creates the panel with the input focused.
func New(deps screens.Deps) *Panel {
	p := &Panel{
		deps:     deps,
		input:    components.NewTextInput("Ask a question", "e.g. Explain the cardiac cycle", false, 50),
		viewport: viewport.New(viewport.WithWidth(60), viewport.WithHeight(10)),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	p.input.Focus()
	p.refresh()
	return p
}

func (p *Panel) Init() tea.Cmd {
	return nil
}

func (p *Panel) Title() string {
	return "AI Assistant"
}

// CapturingInput is always true: the panel owns the keyboard while open.
func (p *Panel) CapturingInput() bool {
	return true
}

func (p *Panel) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Close"},
	}
}

// Turns returns the conversation so far.
func (p *Panel) Turns() []assistant.Turn {
	return p.turns
}

// Waiting reports whether a reply is pending.
func (p *Panel) Waiting() bool {
	return p.waiting
}

// SetSize fits the panel to the area it is drawn in.
func (p *Panel) SetSize(width, height int) {
	p.width, p.height = width, height
	p.input.Model.SetWidth(max(width-12, 10))
	p.viewport.SetWidth(max(width-6, 10))
	p.viewport.SetHeight(max(height-9, 3))
	p.refresh()
}

func (p *Panel) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		p.waiting = false
		if msg.err != nil {
			p.deps.Logger().Error("assistant chat", "error", msg.err)
			p.turns = append(p.turns, assistant.Turn{
				Role: llm.RoleAssistant,
				Text: failureText(msg.err),
				At:   p.deps.Clock(),
			})
		} else {
			p.turns = append(p.turns, assistant.Turn{Role: llm.RoleAssistant, Text: msg.text, At: p.deps.Clock()})
		}
		p.refresh()
		return p, nil

	case spinner.TickMsg:
		if !p.waiting {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		p.refresh()
		return p, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return p, func() tea.Msg { return CloseMsg{} }
		case "enter":
			return p, p.ask()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			p.viewport, cmd = p.viewport.Update(msg)
			return p, cmd
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func failureText(err error) string {
	var rl *llm.ErrRateLimit
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "That took too long. Please try again."
	case errors.As(err, &rl):
		return "I'm getting too many requests right now. Try again in a moment."
	}
	return "Sorry, I couldn't reach the assistant. Please try again."
}

func (p *Panel) ask() tea.Cmd {
	if p.waiting || !p.deps.Assistant.Available() {
		return nil
	}
	question := strings.TrimSpace(p.input.Value())
	if question == "" {
		return nil
	}

	history := append([]assistant.Turn(nil), p.turns...)
	p.turns = append(p.turns, assistant.Turn{Role: llm.RoleUser, Text: question, At: p.deps.Clock()})
	p.input.SetValue("")
	p.waiting = true
	p.refresh()

	svc := p.deps.Assistant
	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
		defer cancel()
		text, err := svc.Ask(ctx, history, question)
		return replyMsg{text: text, err: err}
	}
	return tea.Batch(p.spinner.Tick, fetch)
}

func (p *Panel) refresh() {
	pal := p.deps.CurrentPalette()
	th := theme.Resolve(p.deps.CurrentUser())
	width := max(p.viewport.Width()-2, 10)

	you := lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
	bot := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	body := lipgloss.NewStyle().Foreground(pal.Text).Width(width)

	var b strings.Builder
	b.WriteString(bot.Render("Assistant") + "\n" + body.Render(greeting) + "\n\n")
	for _, t := range p.turns {
		if t.Role == llm.RoleUser {
			b.WriteString(you.Render("You"))
		} else {
			b.WriteString(bot.Render("Assistant"))
		}
		b.WriteString("\n" + body.Render(t.Text) + "\n\n")
	}
	if p.waiting {
		b.WriteString(p.spinner.View() + " thinking…")
	}
	p.viewport.SetContent(b.String())
	p.viewport.GotoBottom()
}

func (p *Panel) View(width, height int) string {
	pal := p.deps.CurrentPalette()
	th := theme.Resolve(p.deps.CurrentUser())

	var body string
	if !p.deps.Assistant.Available() {
		body = theme.Hint.Render("The assistant is not configured.\nSet ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY and restart.")
	} else {
		body = p.viewport.View() + "\n\n" + p.input.View(pal)
	}

	return lipgloss.NewStyle().
		Width(max(width, 20)).
		Height(max(height, 5)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Accent).
		Background(pal.Card).
		Padding(0, 1).
		Render(th.AccentTitle("✦ AI Study Assistant") + "\n\n" + body)
}
