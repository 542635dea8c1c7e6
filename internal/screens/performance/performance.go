package performance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/assistant"
	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/store"
	"github.com/saketh8887/medconnect/internal/ui/components"
	"github.com/saketh8887/medconnect/internal/ui/layout"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

const (
	recentSessions  = 5
	feedbackTimeout = 90 * time.Second
)

type historyMsg struct {
	hours    float64
	sessions []store.StudySession
	err      error
}

type feedbackMsg struct {
	feedback *assistant.AIFeedback
	err      error
}

// PerformanceScreen summarises study time, quiz results and simulation
// statistics, and can ask the assistant for a structured review.
type PerformanceScreen struct {
	deps screens.Deps
	caps router.Capabilities

	hours    float64
	sessions []store.StudySession
	loaded   bool
	loadErr  error

	spinner  spinner.Model
	loading  bool
	feedback *assistant.AIFeedback
	fbErr    error
}

var _ screen.Screen = (*PerformanceScreen)(nil)

// New creates the performance view.
func New(deps screens.Deps, caps router.Capabilities) *PerformanceScreen {
	return &PerformanceScreen{
		deps:    deps,
		caps:    caps,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (p *PerformanceScreen) Init() tea.Cmd {
	u := p.deps.CurrentUser()
	if u == nil || p.deps.Store == nil {
		return nil
	}
	st, id := p.deps.Store, u.ID
	return func() tea.Msg {
		ctx := context.Background()
		hours, err := st.TotalStudyHours(ctx, id)
		if err != nil {
			return historyMsg{err: err}
		}
		sessions, err := st.StudySessions(ctx, id, store.QueryOpts{})
		return historyMsg{hours: hours, sessions: sessions, err: err}
	}
}

func (p *PerformanceScreen) Title() string {
	return "Performance"
}

func (p *PerformanceScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Dashboard"}}
	if p.deps.Assistant.Available() {
		hints = append([]layout.KeyHint{{Key: "f", Description: "AI feedback"}}, hints...)
	}
	return hints
}

func (p *PerformanceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		p.loaded = true
		p.loadErr = msg.err
		p.hours = msg.hours
		if n := len(msg.sessions); n > recentSessions {
			msg.sessions = msg.sessions[n-recentSessions:]
		}
		p.sessions = msg.sessions
		if msg.err != nil {
			p.deps.Logger().Warn("load study history", "error", msg.err)
		}
		return p, nil

	case feedbackMsg:
		p.loading = false
		p.feedback = msg.feedback
		p.fbErr = msg.err
		if msg.err != nil {
			p.deps.Logger().Error("ai feedback", "error", msg.err)
			return p, screens.Status("AI feedback failed")
		}
		return p, nil

	case spinner.TickMsg:
		if !p.loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "backspace":
			if p.caps.BackToDashboard != nil {
				return p, p.caps.BackToDashboard()
			}
		case "f", "enter":
			return p, p.requestFeedback()
		}
	}
	return p, nil
}

func (p *PerformanceScreen) requestFeedback() tea.Cmd {
	if p.loading {
		return nil
	}
	u := p.deps.CurrentUser()
	if u == nil {
		return nil
	}
	if !p.deps.Assistant.Available() {
		p.fbErr = assistant.ErrUnavailable
		return nil
	}

	p.loading = true
	p.fbErr = nil
	svc := p.deps.Assistant
	user := u.Clone()
	perf := assistant.Performance{Tasks: p.deps.Catalog.Performance(), StudyHours: p.hours}
	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), feedbackTimeout)
		defer cancel()
		fb, err := svc.Feedback(ctx, user, perf)
		return feedbackMsg{feedback: fb, err: err}
	}
	return tea.Batch(p.spinner.Tick, fetch)
}

func (p *PerformanceScreen) View(width, height int) string {
	pal := p.deps.CurrentPalette()
	u := p.deps.CurrentUser()
	th := theme.Resolve(u)
	heading := lipgloss.NewStyle().Foreground(pal.Text).Bold(true)
	dim := lipgloss.NewStyle().Foreground(pal.TextDim)
	inner := max(width-4, 20)

	sections := []string{th.AccentTitle("Performance Analytics"), ""}

	hours := "…"
	switch {
	case p.loadErr != nil:
		hours = "n/a"
	case p.loaded:
		hours = fmt.Sprintf("%.1f h", p.hours)
	}
	avg, quizzes := "—", "0"
	if u != nil && len(u.QuizScores) > 0 {
		avg = fmt.Sprintf("%.0f%%", u.AverageScore())
		quizzes = fmt.Sprint(len(u.QuizScores))
	}
	sections = append(sections, components.CardRow([]string{
		components.StatCard("Total study time", hours, th.Accent, pal, 22),
		components.StatCard("Quizzes taken", quizzes, theme.Success, pal, 22),
		components.StatCard("Average score", avg, theme.Warning, pal, 22),
	}, inner), "")

	sections = append(sections, heading.Render("Subject progress"))
	for _, s := range p.deps.Catalog.Subjects() {
		done := 0
		for _, t := range s.Topics {
			if u != nil && u.HasCompletedTopic(t.ID) {
				done++
			}
		}
		pct := 0.0
		if len(s.Topics) > 0 {
			pct = float64(done) / float64(len(s.Topics))
		}
		label := fmt.Sprintf("%-12s", s.Name)
		sections = append(sections, components.NewProgressBar(label, pct, true, min(inner, 60), th.Accent).View(pal))
	}
	sections = append(sections, "")

	sections = append(sections, heading.Render("Simulation tasks"))
	tasks := p.deps.Catalog.Tasks()
	for _, tp := range p.deps.Catalog.Performance() {
		name := tp.TaskID
		for _, t := range tasks {
			if t.ID == tp.TaskID {
				name = t.Title
			}
		}
		sections = append(sections, fmt.Sprintf("  %s  %s",
			lipgloss.NewStyle().Foreground(pal.Text).Render(name),
			dim.Render(fmt.Sprintf("%d attempts · %.0f%% success · %s", tp.Attempts, tp.SuccessRate*100, tp.TimeSpent.Round(time.Second))),
		))
	}
	sections = append(sections, "")

	if len(p.sessions) > 0 {
		sections = append(sections, heading.Render("Recent sessions"))
		for i := len(p.sessions) - 1; i >= 0; i-- {
			ss := p.sessions[i]
			sections = append(sections, dim.Render(fmt.Sprintf("  %s  %.0f min",
				ss.Timestamp.Local().Format("02 Jan 15:04"), ss.Hours*60)))
		}
		sections = append(sections, "")
	}

	sections = append(sections, p.renderFeedback(th, pal, inner))
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
}

func (p *PerformanceScreen) renderFeedback(th theme.Theme, pal theme.Palette, width int) string {
	heading := lipgloss.NewStyle().Foreground(pal.Text).Bold(true)
	switch {
	case p.loading:
		return p.spinner.View() + " Asking your AI mentor…"
	case errors.Is(p.fbErr, assistant.ErrUnavailable):
		return theme.Hint.Render("AI feedback is not configured. Set an LLM API key to enable it.")
	case p.fbErr != nil:
		return theme.Incorrect.Render("Could not get feedback. Press f to retry.")
	case p.feedback == nil:
		if !p.deps.Assistant.Available() {
			return theme.Hint.Render("AI feedback is not configured. Set an LLM API key to enable it.")
		}
		return theme.Hint.Render("Press f for AI feedback on your progress.")
	}

	fb := p.feedback
	var lines []string
	lines = append(lines, th.AccentTitle("AI Mentor Feedback"))
	list := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		lines = append(lines, heading.Render(title))
		for _, it := range items {
			lines = append(lines, "  • "+it)
		}
	}
	list("Weak spots", fb.WeakSpots)
	list("Mastered", fb.MasteredAreas)
	list("Action plan", fb.ActionPlan)
	list("Focus topics", fb.FocusTopics)
	if fb.Encouragement != "" {
		lines = append(lines, "", theme.Correct.Render(fb.Encouragement))
	}
	return components.Card(strings.Join(lines, "\n"), pal, width)
}
