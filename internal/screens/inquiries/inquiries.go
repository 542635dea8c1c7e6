package inquiries

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/store"
	"github.com/saketh8887/medconnect/internal/ui/components"
	"github.com/saketh8887/medconnect/internal/ui/layout"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

type mode int

const (
	modeList mode = iota
	modeAsk
	modeAnswer
)

type listedMsg struct {
	items []store.Inquiry
	err   error
}

type savedMsg struct {
	status string
	err    error
}

// InquiriesScreen lets students ask subject questions and lets admins
// answer them.
type InquiriesScreen struct {
	deps     screens.Deps
	caps     router.Capabilities
	subjects []catalog.Subject

	mode    mode
	items   []store.Inquiry
	cursor  int
	loadErr error

	subject int
	input   components.TextInput
	busy    bool
}

var (
	_ screen.Screen        = (*InquiriesScreen)(nil)
	_ screen.InputCapturer = (*InquiriesScreen)(nil)
)

// New creates the inquiries view.
func New(deps screens.Deps, caps router.Capabilities) *InquiriesScreen {
	return &InquiriesScreen{
		deps:     deps,
		caps:     caps,
		subjects: deps.Catalog.Subjects(),
	}
}

func (q *InquiriesScreen) admin() bool {
	return q.deps.CurrentUser().IsAdmin()
}

func (q *InquiriesScreen) Init() tea.Cmd {
	return q.load()
}

func (q *InquiriesScreen) load() tea.Cmd {
	u := q.deps.CurrentUser()
	if u == nil || q.deps.Store == nil {
		return nil
	}
	studentID := u.ID
	if u.IsAdmin() {
		studentID = ""
	}
	st := q.deps.Store
	return func() tea.Msg {
		items, err := st.ListInquiries(context.Background(), studentID)
		return listedMsg{items: items, err: err}
	}
}

func (q *InquiriesScreen) Title() string {
	return "Inquiries"
}

// CapturingInput is true while a question or answer is being typed.
func (q *InquiriesScreen) CapturingInput() bool {
	return q.mode != modeList
}

func (q *InquiriesScreen) KeyHints() []layout.KeyHint {
	switch q.mode {
	case modeAsk:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Subject"},
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeAnswer:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Resolve"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if q.admin() {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "a", Description: "Answer"},
			{Key: "Esc", Description: "Dashboard"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "n", Description: "New inquiry"},
		{Key: "Esc", Description: "Dashboard"},
	}
}

func (q *InquiriesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listedMsg:
		q.loadErr = msg.err
		if msg.err != nil {
			q.deps.Logger().Warn("list inquiries", "error", msg.err)
			return q, nil
		}
		q.items = msg.items
		q.cursor = min(q.cursor, max(len(q.items)-1, 0))
		return q, nil

	case savedMsg:
		q.busy = false
		if msg.err != nil {
			q.deps.Logger().Error("save inquiry", "error", msg.err)
			q.input.SetError("Could not save. Try again.")
			return q, nil
		}
		q.mode = modeList
		return q, tea.Batch(q.load(), screens.Status(msg.status))

	case tea.KeyPressMsg:
		if q.mode == modeList {
			return q, q.updateList(msg)
		}
		return q, q.updateForm(msg)
	}

	if q.mode != modeList {
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}
	return q, nil
}

func (q *InquiriesScreen) updateList(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "backspace":
		if q.caps.BackToDashboard != nil {
			return q.caps.BackToDashboard()
		}
	case "up", "k":
		if q.cursor > 0 {
			q.cursor--
		}
	case "down", "j":
		if q.cursor < len(q.items)-1 {
			q.cursor++
		}
	case "n":
		if !q.admin() {
			q.mode = modeAsk
			q.input = components.NewTextInput("Your question", "What would you like to ask faculty?", false, 60)
			return q.input.Focus()
		}
	case "a", "enter":
		if q.admin() && q.cursor < len(q.items) && q.items[q.cursor].Status == store.InquiryPending {
			q.mode = modeAnswer
			q.input = components.NewTextInput("Answer", "Type the resolution", false, 60)
			return q.input.Focus()
		}
	}
	return nil
}

func (q *InquiriesScreen) updateForm(msg tea.KeyPressMsg) tea.Cmd {
	if q.busy {
		return nil
	}
	switch msg.String() {
	case "esc":
		q.mode = modeList
		return nil
	case "tab":
		if q.mode == modeAsk && len(q.subjects) > 0 {
			q.subject = (q.subject + 1) % len(q.subjects)
		}
		return nil
	case "shift+tab":
		if q.mode == modeAsk && len(q.subjects) > 0 {
			q.subject = (q.subject + len(q.subjects) - 1) % len(q.subjects)
		}
		return nil
	case "enter":
		return q.submit()
	}
	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return cmd
}

func (q *InquiriesScreen) submit() tea.Cmd {
	text := strings.TrimSpace(q.input.Value())
	if text == "" {
		q.input.SetError("Please write something first")
		return nil
	}
	st := q.deps.Store
	u := q.deps.CurrentUser()
	if st == nil || u == nil {
		return nil
	}
	q.busy = true

	if q.mode == modeAnswer {
		id := q.items[q.cursor].ID
		return func() tea.Msg {
			err := st.ResolveInquiry(context.Background(), id, text)
			return savedMsg{status: "Inquiry resolved", err: err}
		}
	}

	inq := &store.Inquiry{
		StudentID:   u.ID,
		StudentName: u.Name,
		Question:    text,
	}
	if len(q.subjects) > 0 {
		inq.SubjectID = q.subjects[q.subject].ID
	}
	return func() tea.Msg {
		err := st.CreateInquiry(context.Background(), inq)
		return savedMsg{status: "Inquiry sent to faculty", err: err}
	}
}

func (q *InquiriesScreen) subjectName(id string) string {
	for _, s := range q.subjects {
		if s.ID == id {
			return s.Name
		}
	}
	return "General"
}

func (q *InquiriesScreen) View(width, height int) string {
	pal := q.deps.CurrentPalette()
	th := theme.Resolve(q.deps.CurrentUser())
	dim := lipgloss.NewStyle().Foreground(pal.TextDim)
	text := lipgloss.NewStyle().Foreground(pal.Text)
	inner := max(width-4, 20)

	title := "My Inquiries"
	if q.admin() {
		title = "Student Inquiries"
	}
	sections := []string{th.AccentTitle(title), ""}

	switch q.mode {
	case modeAsk:
		var subs []string
		for i, s := range q.subjects {
			if i == q.subject {
				subs = append(subs, th.Badge(s.Name))
			} else {
				subs = append(subs, dim.Render(s.Name))
			}
		}
		sections = append(sections, text.Render("Subject  ")+strings.Join(subs, "  "), "", q.input.View(pal))
		if q.busy {
			sections = append(sections, "", theme.Pending.Render("Sending…"))
		}
		return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))

	case modeAnswer:
		it := q.items[q.cursor]
		sections = append(sections,
			dim.Render(fmt.Sprintf("%s · %s", it.StudentName, q.subjectName(it.SubjectID))),
			text.Render(it.Question),
			"",
			q.input.View(pal),
		)
		return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
	}

	if q.loadErr != nil {
		sections = append(sections, theme.Incorrect.Render("Inquiries could not be loaded."))
		return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
	}
	if len(q.items) == 0 {
		hint := "No inquiries yet. Press n to ask faculty a question."
		if q.admin() {
			hint = "No inquiries from students."
		}
		sections = append(sections, theme.Hint.Render(hint))
		return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
	}

	for i, it := range q.items {
		status := theme.Pending.Render("● Pending")
		if it.Status == store.InquiryResolved {
			status = theme.Correct.Render("✓ Resolved")
		}
		meta := fmt.Sprintf("%s · %s", q.subjectName(it.SubjectID), it.CreatedAt.Local().Format("02 Jan 15:04"))
		if q.admin() {
			meta = it.StudentName + " · " + meta
		}

		prefix := "  "
		qStyle := text
		if i == q.cursor {
			prefix = "▸ "
			qStyle = qStyle.Foreground(th.Accent).Bold(true)
		}
		block := []string{
			prefix + qStyle.Render(it.Question),
			"  " + status + "  " + dim.Render(meta),
		}
		if it.Answer != "" {
			block = append(block, "  "+lipgloss.NewStyle().Foreground(pal.Text).Width(inner-4).Render("↳ "+it.Answer))
		}
		sections = append(sections, strings.Join(block, "\n"), "")
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
}
