package subjects

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/profile"
	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/ui/components"
	"github.com/saketh8887/medconnect/internal/ui/layout"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

type level int

const (
	levelSubjects level = iota
	levelTopics
	levelChapters
	levelQuiz
	levelResult
)

type quizSavedMsg struct {
	user *profile.UserProfile
	err  error
}

// SubjectsScreen drills from subject to topic to chapter and runs the
// chapter quiz. A finished quiz is recorded against the session user.
type SubjectsScreen struct {
	deps screens.Deps
	caps router.Capabilities

	level   level
	menu    components.Menu
	subject catalog.Subject
	topic   catalog.Topic
	chapter catalog.Chapter

	question int
	quiz     components.MultiChoice
	correct  int
	score    float64
	saving   bool
	saveErr  error
}

var _ screen.Screen = (*SubjectsScreen)(nil)

// New creates the subjects browser at the subject list.
func New(deps screens.Deps, caps router.Capabilities) *SubjectsScreen {
	s := &SubjectsScreen{deps: deps, caps: caps}
	s.showSubjects()
	return s
}

func (s *SubjectsScreen) Init() tea.Cmd {
	return nil
}

func (s *SubjectsScreen) Title() string {
	switch s.level {
	case levelTopics:
		return s.subject.Name
	case levelChapters:
		return s.topic.Title
	case levelQuiz, levelResult:
		return "Quiz · " + s.chapter.Title
	}
	return "Subjects"
}

func (s *SubjectsScreen) KeyHints() []layout.KeyHint {
	if s.level == levelQuiz {
		return []layout.KeyHint{
			{Key: "A-D", Description: "Answer"},
			{Key: "Enter", Description: "Submit / Next"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SubjectsScreen) accent() theme.Theme {
	return theme.Resolve(s.deps.CurrentUser())
}

func (s *SubjectsScreen) showSubjects() {
	s.level = levelSubjects
	var items []components.MenuItem
	for _, sub := range s.deps.Catalog.Subjects() {
		items = append(items, components.MenuItem{
			Label:  sub.Name,
			Detail: fmt.Sprintf("%s · %d topics · %d%% attendance", sub.Code, len(sub.Topics), sub.Attendance),
		})
	}
	s.menu = components.NewMenu(items, s.accent().Accent)
}

func (s *SubjectsScreen) showTopics() {
	s.level = levelTopics
	u := s.deps.CurrentUser()
	var items []components.MenuItem
	for _, t := range s.subject.Topics {
		done := 0
		for _, ch := range t.Chapters {
			if u != nil && u.HasCompletedChapter(ch.ID) {
				done++
			}
		}
		label := t.Title
		if u != nil && u.HasCompletedTopic(t.ID) {
			label = "✓ " + label
		}
		items = append(items, components.MenuItem{
			Label:  label,
			Detail: fmt.Sprintf("%d/%d chapters · %s", done, len(t.Chapters), t.Description),
		})
	}
	s.menu = components.NewMenu(items, s.accent().Accent)
}

func (s *SubjectsScreen) showChapters() {
	s.level = levelChapters
	u := s.deps.CurrentUser()
	var items []components.MenuItem
	for _, ch := range s.topic.Chapters {
		label := ch.Title
		detail := ch.Description
		if u != nil && u.HasCompletedChapter(ch.ID) {
			label = "✓ " + label
			if score, ok := u.QuizScores[ch.ID]; ok {
				detail = fmt.Sprintf("Scored %.0f%% · %s", score, detail)
			}
		}
		items = append(items, components.MenuItem{Label: label, Detail: detail})
	}
	s.menu = components.NewMenu(items, s.accent().Accent)
}

func (s *SubjectsScreen) startQuiz() {
	s.level = levelQuiz
	s.question = 0
	s.correct = 0
	s.saveErr = nil
	s.loadQuestion()
}

func (s *SubjectsScreen) loadQuestion() {
	q := s.chapter.QuizPool[s.question]
	s.quiz = components.NewMultiChoice(q.Question, q.Options, q.CorrectAnswer, s.accent().Accent)
}

func (s *SubjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizSavedMsg:
		s.saving = false
		s.saveErr = msg.err
		if msg.err != nil {
			s.deps.Logger().Error("record quiz score", "chapter", s.chapter.ID, "error", msg.err)
			return s, screens.Status("Could not save quiz result")
		}
		return s, tea.Batch(
			screens.UserUpdated(msg.user),
			screens.Status(fmt.Sprintf("%s completed · %.0f%%", s.chapter.Title, s.score)),
		)

	case tea.KeyPressMsg:
		switch s.level {
		case levelQuiz:
			return s, s.updateQuiz(msg)
		case levelResult:
			if s.saving {
				return s, nil
			}
			switch msg.String() {
			case "enter", "esc":
				s.showChapters()
			}
			return s, nil
		}
		return s, s.updateList(msg)
	}
	return s, nil
}

func (s *SubjectsScreen) updateList(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "backspace":
		switch s.level {
		case levelSubjects:
			if s.caps.BackToDashboard != nil {
				return s.caps.BackToDashboard()
			}
		case levelTopics:
			s.showSubjects()
		case levelChapters:
			s.showTopics()
		}
		return nil

	case "enter":
		i := s.menu.Selected
		switch s.level {
		case levelSubjects:
			subs := s.deps.Catalog.Subjects()
			if i < len(subs) {
				s.subject = subs[i]
				s.showTopics()
			}
		case levelTopics:
			if i < len(s.subject.Topics) {
				s.topic = s.subject.Topics[i]
				s.showChapters()
			}
		case levelChapters:
			if i < len(s.topic.Chapters) && len(s.topic.Chapters[i].QuizPool) > 0 {
				s.chapter = s.topic.Chapters[i]
				s.startQuiz()
			}
		}
		return nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return cmd
}

func (s *SubjectsScreen) updateQuiz(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "esc" {
		s.showChapters()
		return nil
	}

	if !s.quiz.Submitted {
		s.quiz, _ = s.quiz.Update(msg)
		if s.quiz.IsCorrect() {
			s.correct++
		}
		return nil
	}

	if msg.String() != "enter" {
		return nil
	}
	s.question++
	if s.question < len(s.chapter.QuizPool) {
		s.loadQuestion()
		return nil
	}
	return s.finishQuiz()
}

func (s *SubjectsScreen) finishQuiz() tea.Cmd {
	s.level = levelResult
	s.score = float64(s.correct) * 100 / float64(len(s.chapter.QuizPool))

	u := s.deps.CurrentUser()
	if u == nil || s.deps.Store == nil {
		return nil
	}
	s.saving = true
	st, cat, userID, chapterID, score := s.deps.Store, s.deps.Catalog, u.ID, s.chapter.ID, s.score
	return func() tea.Msg {
		updated, err := st.RecordQuizScore(context.Background(), cat, userID, chapterID, score)
		return quizSavedMsg{user: updated, err: err}
	}
}

func (s *SubjectsScreen) View(width, height int) string {
	pal := s.deps.CurrentPalette()
	th := s.accent()
	heading := lipgloss.NewStyle().Foreground(pal.Text).Bold(true)
	dim := lipgloss.NewStyle().Foreground(pal.TextDim)

	var sections []string
	switch s.level {
	case levelSubjects:
		sections = append(sections, th.AccentTitle("Subjects"), dim.Render("Choose a course to study"), "", s.menu.View(pal))

	case levelTopics:
		sections = append(sections,
			th.AccentTitle(s.subject.Name),
			dim.Render(s.subject.Code),
			"",
			s.progress(pal, width),
			"",
			s.menu.View(pal),
		)

	case levelChapters:
		sections = append(sections, th.AccentTitle(s.topic.Title), dim.Render(s.topic.Description), "", s.menu.View(pal))

	case levelQuiz:
		sections = append(sections,
			heading.Render(fmt.Sprintf("Question %d of %d", s.question+1, len(s.chapter.QuizPool))),
			"",
			s.quiz.View(pal),
		)
		if s.quiz.Submitted {
			verdict := theme.Incorrect.Render("✗ Not quite.")
			if s.quiz.IsCorrect() {
				verdict = theme.Correct.Render("✓ Correct!")
			}
			sections = append(sections,
				verdict,
				dim.Render(s.chapter.QuizPool[s.question].Explanation),
				"",
				theme.Hint.Render("press enter to continue"),
			)
		}

	case levelResult:
		sections = append(sections,
			th.AccentTitle("Quiz complete"),
			"",
			heading.Render(fmt.Sprintf("You scored %.0f%% (%d of %d)", s.score, s.correct, len(s.chapter.QuizPool))),
			"",
		)
		switch {
		case s.saving:
			sections = append(sections, theme.Pending.Render("Saving result…"))
		case s.saveErr != nil:
			sections = append(sections, theme.Incorrect.Render("Result could not be saved."))
		default:
			sections = append(sections, theme.Correct.Render("Chapter marked complete."))
		}
		sections = append(sections, "", theme.Hint.Render("press enter to return to chapters"))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
}

func (s *SubjectsScreen) progress(pal theme.Palette, width int) string {
	u := s.deps.CurrentUser()
	total, done := len(s.subject.Topics), 0
	for _, t := range s.subject.Topics {
		if u != nil && u.HasCompletedTopic(t.ID) {
			done++
		}
	}
	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	bar := components.NewProgressBar("Topics completed", pct, true, min(max(width-30, 10), 40), s.accent().Accent)
	return bar.View(pal)
}
