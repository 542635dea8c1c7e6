package subjects

import (
	"context"
	"strings"
	"testing"

	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/screens/screenstest"
)

func TestDrillDownAndBack(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	s := New(env.Deps, router.Capabilities{BackToDashboard: router.BackToDashboard})

	screenstest.Send(s, "down", "enter")
	if s.level != levelTopics || s.subject.ID != "s2" {
		t.Fatalf("level=%d subject=%q, want topics of s2", s.level, s.subject.ID)
	}
	if s.Title() != "Neurology" {
		t.Errorf("title = %q", s.Title())
	}

	screenstest.Send(s, "enter")
	if s.level != levelChapters || s.topic.ID != "s2t1" {
		t.Fatalf("level=%d topic=%q, want chapters of s2t1", s.level, s.topic.ID)
	}

	screenstest.Send(s, "esc", "esc")
	if s.level != levelSubjects {
		t.Fatalf("level = %d, want subjects", s.level)
	}

	_, cmd := screenstest.Send(s, "esc")
	if _, ok := screenstest.Find[router.BackToDashboardMsg](cmd); !ok {
		t.Error("esc at the subject list should go back to the dashboard")
	}
}

func TestQuizRecordsScore(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	s := New(env.Deps, router.Capabilities{})

	screenstest.Send(s, "enter", "enter", "enter")
	if s.level != levelQuiz || s.chapter.ID != "s1t1c1" {
		t.Fatalf("level=%d chapter=%q, want quiz for s1t1c1", s.level, s.chapter.ID)
	}

	// First answer right, second wrong.
	screenstest.Send(s, "b")
	if !strings.Contains(s.View(100, 40), "Correct") {
		t.Error("expected correct verdict")
	}
	screenstest.Send(s, "enter", "a")
	if !strings.Contains(s.View(100, 40), "Not quite") {
		t.Error("expected incorrect verdict")
	}

	_, cmd := screenstest.Send(s, "enter")
	if s.level != levelResult {
		t.Fatalf("level = %d, want result", s.level)
	}
	if s.score != 50 {
		t.Errorf("score = %v, want 50", s.score)
	}

	saved, ok := screenstest.Find[quizSavedMsg](cmd)
	if !ok {
		t.Fatal("expected quizSavedMsg")
	}
	if saved.err != nil {
		t.Fatalf("save: %v", saved.err)
	}

	_, cmd = s.Update(saved)
	upd, ok := screenstest.Find[screens.UserUpdatedMsg](cmd)
	if !ok {
		t.Fatal("expected UserUpdatedMsg")
	}
	if !upd.User.HasCompletedChapter("s1t1c1") {
		t.Error("chapter should be complete on the updated user")
	}
	if upd.User.QuizScores["s1t1c1"] != 50 {
		t.Errorf("stored score = %v", upd.User.QuizScores["s1t1c1"])
	}

	stored, err := env.Store.User(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if !stored.HasCompletedChapter("s1t1c1") {
		t.Error("chapter not persisted")
	}

	env.SetUser(upd.User)
	screenstest.Send(s, "enter")
	if s.level != levelChapters {
		t.Fatalf("level = %d, want chapters", s.level)
	}
	if !strings.Contains(s.View(100, 40), "Scored 50%") {
		t.Error("chapter list should show the recorded score")
	}
}

func TestEscAbandonsQuiz(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	s := New(env.Deps, router.Capabilities{})

	screenstest.Send(s, "enter", "enter", "enter", "b")
	_, cmd := screenstest.Send(s, "esc")
	if cmd != nil {
		t.Error("abandoning should not save")
	}
	if s.level != levelChapters {
		t.Errorf("level = %d, want chapters", s.level)
	}
}
