package inquiries

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens/screenstest"
	"github.com/saketh8887/medconnect/internal/store"
)

// settle runs cmd and feeds every resulting message back, once.
func settle(t *testing.T, s screen.Screen, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	var out []tea.Msg
	for _, m := range screenstest.Run(cmd) {
		out = append(out, m)
		s.Update(m)
	}
	return out
}

func TestStudentAsksQuestion(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	q := New(env.Deps, router.Capabilities{BackToDashboard: router.BackToDashboard})
	settle(t, q, q.Init())

	if !strings.Contains(q.View(100, 30), "No inquiries yet") {
		t.Error("expected empty-state hint")
	}

	screenstest.Send(q, "n")
	if !q.CapturingInput() {
		t.Fatal("form should capture input")
	}
	screenstest.Send(q, "tab")
	var s screen.Screen = screenstest.Type(q, "Is the ECG viva next week?")

	_, cmd := screenstest.Send(s, "enter")
	msgs := settle(t, q, cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	saved := msgs[0].(savedMsg)
	if saved.err != nil {
		t.Fatalf("save: %v", saved.err)
	}
	if q.mode != modeList {
		t.Error("should return to the list after saving")
	}

	items, err := env.Store.ListInquiries(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("stored %d inquiries, want 1", len(items))
	}
	if items[0].SubjectID != "s2" || items[0].StudentName != "Sarah Sharma" {
		t.Errorf("stored %+v", items[0])
	}
}

func TestEmptyQuestionRejected(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	q := New(env.Deps, router.Capabilities{})

	screenstest.Send(q, "n")
	_, cmd := screenstest.Send(q, "enter")
	if cmd != nil {
		t.Error("empty question should not be sent")
	}
	if q.input.Err() == "" {
		t.Error("expected inline error")
	}

	screenstest.Send(q, "esc")
	if q.mode != modeList || q.CapturingInput() {
		t.Error("esc should cancel the form")
	}
}

func TestAdminResolvesPending(t *testing.T) {
	env := screenstest.New(t, screenstest.AdminEmail)
	ctx := context.Background()
	inq := &store.Inquiry{StudentID: "u1", StudentName: "Sarah Sharma", SubjectID: "s1", Question: "Mitral prolapse murmur?"}
	if err := env.Store.CreateInquiry(ctx, inq); err != nil {
		t.Fatal(err)
	}

	q := New(env.Deps, router.Capabilities{})
	settle(t, q, q.Init())
	if !strings.Contains(q.View(100, 30), "Sarah Sharma") {
		t.Error("admin list should show the student")
	}

	screenstest.Send(q, "a")
	if q.mode != modeAnswer {
		t.Fatalf("mode = %d, want answer", q.mode)
	}
	var s screen.Screen = screenstest.Type(q, "Mid-systolic click, late murmur.")
	_, cmd := screenstest.Send(s, "enter")

	msgs := settle(t, q, cmd)
	if len(msgs) != 1 || msgs[0].(savedMsg).err != nil {
		t.Fatalf("resolve: %v", msgs)
	}

	items, err := env.Store.ListInquiries(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if items[0].Status != store.InquiryResolved {
		t.Errorf("status = %q, want resolved", items[0].Status)
	}
	if items[0].Answer != "Mid-systolic click, late murmur." {
		t.Errorf("answer = %q", items[0].Answer)
	}

	// Resolved items cannot be answered again.
	settle(t, q, q.load())
	screenstest.Send(q, "a")
	if q.mode != modeList {
		t.Error("resolved inquiry should not open the answer form")
	}
}

func TestStudentCannotAnswer(t *testing.T) {
	env := screenstest.New(t, screenstest.StudentEmail)
	if err := env.Store.CreateInquiry(context.Background(), &store.Inquiry{StudentID: "u1", Question: "Q?"}); err != nil {
		t.Fatal(err)
	}
	q := New(env.Deps, router.Capabilities{})
	settle(t, q, q.Init())

	screenstest.Send(q, "a")
	if q.mode != modeList {
		t.Error("students should not get the answer form")
	}
}
